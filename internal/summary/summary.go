// Package summary reports how records are distributed across ticker
// symbols: distinct group count plus mean, min, and max of the
// per-ticker record counts.
package summary

import "github.com/sppulse/sppulse/internal/domain/models"

// CountByTicker groups records by ticker symbol and returns the record
// count per symbol. Read-only over its input.
func CountByTicker(records []models.PriceRecord) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Name]++
	}
	return counts
}

// FromCounts computes distribution statistics from per-ticker counts.
// An empty map yields the zero Summary: 0 tickers, mean/min/max all 0
// (never NaN, never a panic).
func FromCounts(counts map[string]int) models.Summary {
	if len(counts) == 0 {
		return models.Summary{}
	}

	var sum, minC, maxC int
	first := true
	for _, n := range counts {
		sum += n
		if first {
			minC, maxC = n, n
			first = false
			continue
		}
		if n < minC {
			minC = n
		}
		if n > maxC {
			maxC = n
		}
	}

	return models.Summary{
		Tickers:   len(counts),
		MeanCount: float64(sum) / float64(len(counts)),
		MinCount:  minC,
		MaxCount:  maxC,
	}
}

// Summarize groups the records by ticker and reports count statistics.
func Summarize(records []models.PriceRecord) models.Summary {
	return FromCounts(CountByTicker(records))
}
