package models

// Summary describes how records are distributed across ticker symbols.
//
// Fields:
//   - Tickers: number of distinct ticker symbols.
//   - MeanCount: arithmetic mean of per-ticker record counts.
//   - MinCount: smallest per-ticker record count.
//   - MaxCount: largest per-ticker record count.
//
// For an empty dataset all fields are zero; MeanCount is 0, not NaN.
//
// swagger:model Summary
type Summary struct {
	Tickers   int     `json:"tickers" example:"505"`
	MeanCount float64 `json:"mean_count" example:"1226.2"`
	MinCount  int     `json:"min_count" example:"323"`
	MaxCount  int     `json:"max_count" example:"1259"`
}
