package cleaning

import (
	"fmt"

	"github.com/sppulse/sppulse/internal/domain/models"
)

// SubtractGroupMean subtracts each ticker's mean of the given price
// column from that column in every record of the ticker, and returns
// the per-ticker means alongside the adjusted copies.
//
// Only the float price columns are supported ("open", "high", "low",
// "close"); volume is an integer count and is not mean-adjusted.
// Records with the target field absent are passed through unchanged and
// do not contribute to the group mean.
//
// Returns:
//   - []models.PriceRecord: adjusted records, input order preserved.
//   - map[string]float64: mean of the column per ticker symbol.
//   - error: if the column is not one of the supported price columns.
func SubtractGroupMean(records []models.PriceRecord, column string) ([]models.PriceRecord, map[string]float64, error) {
	get, set, err := columnAccess(column)
	if err != nil {
		return nil, nil, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if v := get(rec); v != nil {
			sums[rec.Name] += *v
			counts[rec.Name]++
		}
	}

	means := make(map[string]float64, len(counts))
	for name, n := range counts {
		means[name] = sums[name] / float64(n)
	}

	out := make([]models.PriceRecord, len(records))
	for i, rec := range records {
		if v := get(rec); v != nil {
			adjusted := *v - means[rec.Name]
			set(&rec, adjusted)
		}
		out[i] = rec
	}
	return out, means, nil
}

// columnAccess maps a price column name to getter/setter functions.
func columnAccess(column string) (func(models.PriceRecord) *float64, func(*models.PriceRecord, float64), error) {
	switch column {
	case "open":
		return func(r models.PriceRecord) *float64 { return r.Open },
			func(r *models.PriceRecord, v float64) { r.Open = &v }, nil
	case "high":
		return func(r models.PriceRecord) *float64 { return r.High },
			func(r *models.PriceRecord, v float64) { r.High = &v }, nil
	case "low":
		return func(r models.PriceRecord) *float64 { return r.Low },
			func(r *models.PriceRecord, v float64) { r.Low = &v }, nil
	case "close":
		return func(r models.PriceRecord) *float64 { return r.Close },
			func(r *models.PriceRecord, v float64) { r.Close = &v }, nil
	}
	return nil, nil, fmt.Errorf("unsupported column %q: want one of open, high, low, close", column)
}
