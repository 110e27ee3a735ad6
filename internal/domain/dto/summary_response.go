package dto

// SummaryResponse is the JSON body returned by GET /api/v1/summary.
//
// Fields mirror the API contract and may differ from internal domain
// models, keeping the API surface decoupled from business logic.
type SummaryResponse struct {
	Tickers   int     `json:"tickers" example:"505"`      // Distinct ticker symbols
	MeanCount float64 `json:"mean_count" example:"1226"`  // Mean records per ticker
	MinCount  int     `json:"min_count" example:"323"`    // Fewest records for any ticker
	MaxCount  int     `json:"max_count" example:"1259"`   // Most records for any ticker
}
