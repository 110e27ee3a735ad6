// Package quality computes read-only data-quality metrics over a loaded
// record sequence, before any cleaning is applied.
package quality

import "github.com/sppulse/sppulse/internal/domain/models"

// Report describes the quality of a loaded record sequence.
//
// Fields:
//   - NullCounts: per-column count of absent values, keyed by column name.
//     Every column appears in the map, including those with zero nulls.
//   - TotalRows: number of loaded records inspected.
//   - CompleteRows: number of records that would remain if every record
//     with any absent field were removed.
type Report struct {
	NullCounts   map[string]int
	TotalRows    int
	CompleteRows int
}

// Check inspects the loaded sequence and produces a Report.
// It never mutates its input.
func Check(records []models.PriceRecord) Report {
	rep := Report{
		NullCounts: make(map[string]int, len(models.Columns)),
		TotalRows:  len(records),
	}
	for _, col := range models.Columns {
		rep.NullCounts[col] = 0
	}

	for _, rec := range records {
		for _, col := range models.Columns {
			if rec.Absent(col) {
				rep.NullCounts[col]++
			}
		}
		if rec.Complete() {
			rep.CompleteRows++
		}
	}
	return rep
}
