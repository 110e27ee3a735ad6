package quality

import (
	"testing"

	"github.com/sppulse/sppulse/internal/domain/models"
)

func fl(v float64) *float64 { return &v }
func in(v int64) *int64     { return &v }

func full(date, name string) models.PriceRecord {
	return models.PriceRecord{
		Date:   date,
		Open:   fl(15.07),
		High:   fl(15.12),
		Low:    fl(14.63),
		Close:  fl(14.75),
		Volume: in(8407500),
		Name:   name,
	}
}

func TestCheck_SingleMissingOpen(t *testing.T) {
	rec := full("2013-02-08", "AAL")
	rec.Open = nil

	rep := Check([]models.PriceRecord{rec})

	if rep.TotalRows != 1 || rep.CompleteRows != 0 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	for _, col := range models.Columns {
		want := 0
		if col == "open" {
			want = 1
		}
		if rep.NullCounts[col] != want {
			t.Fatalf("column %q: want %d nulls, got %d", col, want, rep.NullCounts[col])
		}
	}
}

func TestCheck_CompleteRows(t *testing.T) {
	missing := full("2013-02-11", "AAL")
	missing.Volume = nil

	rep := Check([]models.PriceRecord{
		full("2013-02-08", "AAL"),
		missing,
		full("2013-02-12", "AAPL"),
	})

	if rep.TotalRows != 3 {
		t.Fatalf("total rows: want 3 got %d", rep.TotalRows)
	}
	if rep.CompleteRows != 2 {
		t.Fatalf("complete rows: want 2 got %d", rep.CompleteRows)
	}
	if rep.NullCounts["volume"] != 1 {
		t.Fatalf("volume nulls: want 1 got %d", rep.NullCounts["volume"])
	}
}

func TestCheck_Empty(t *testing.T) {
	rep := Check(nil)
	if rep.TotalRows != 0 || rep.CompleteRows != 0 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	if len(rep.NullCounts) != len(models.Columns) {
		t.Fatalf("every column should be reported, got %d", len(rep.NullCounts))
	}
}

func TestCheck_DoesNotMutate(t *testing.T) {
	rec := full("2013-02-08", "AAL")
	records := []models.PriceRecord{rec}
	_ = Check(records)
	if records[0].Date != "2013-02-08" || *records[0].Open != 15.07 {
		t.Fatalf("input mutated: %+v", records[0])
	}
}
