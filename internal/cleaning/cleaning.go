// Package cleaning implements the three record-level reduction rules of
// the pipeline: null removal, date coercion, and exact-duplicate
// removal. Every rule is a total, order-preserving function over its
// input and is idempotent (applying it to its own output is a no-op).
package cleaning

import (
	"strings"
	"time"

	"github.com/sppulse/sppulse/internal/domain/models"
)

// DropNulls removes every record with at least one absent field.
// Record order is preserved; the input slice is not modified.
func DropNulls(records []models.PriceRecord) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Complete() {
			out = append(out, rec)
		}
	}
	return out
}

// CoerceDates reinterprets each record's date text as a calendar date.
// Records whose date does not parse as "YYYY-MM-DD" are dropped; for
// survivors, Day is populated and Date normalized to the canonical
// layout. Coercion failures are recovered locally (field treated as
// absent, record removed), never raised as errors.
func CoerceDates(records []models.PriceRecord) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(records))
	for _, rec := range records {
		d, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		rec.Day = d
		rec.Date = d.Format(models.DateLayout)
		out = append(out, rec)
	}
	return out
}

// Dedupe removes records that are field-for-field identical to an
// earlier record, keeping the first occurrence and the relative order
// of survivors.
func Dedupe(records []models.PriceRecord) []models.PriceRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]models.PriceRecord, 0, len(records))
	for _, rec := range records {
		key := strings.Join(rec.Fields(), "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// Clean applies all three rules in sequence: null-drop, date coercion,
// duplicate removal. The result is the single fully-cleaned sequence
// that both the writer and the summarizer consume.
func Clean(records []models.PriceRecord) []models.PriceRecord {
	return Dedupe(CoerceDates(DropNulls(records)))
}
