package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sppulse/sppulse/internal/domain/models"
)

// LoadFile opens, validates, and parses one daily-bar CSV file into memory.
//
// It fails on:
//   - unreadable file (the open error is wrapped and propagated)
//   - header not matching the expected column names/order
//   - rows with the wrong column count
//   - unrecoverable I/O errors
//
// It tolerates:
//   - empty cells (the field stays absent)
//   - cells that do not parse as their column's type (the field is
//     treated as absent; the null-drop cleaning rule removes the record
//     later)
//
// Parameters:
//   - ctx:  context for cancellation.
//   - path: file path.
//
// Returns:
//   - []models.PriceRecord: parsed records in file order.
//   - error: first fatal error encountered (if any).
func LoadFile(ctx context.Context, path string) ([]models.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := readAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// readAll consumes a CSV stream and parses every row. Split out of
// LoadFile so the writer round-trip can be verified against any reader.
func readAll(ctx context.Context, src io.Reader) ([]models.PriceRecord, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1 // column counts checked explicitly per row

	// Validate the header strictly: exact names, exact order.
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("read header: file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(models.Columns) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(models.Columns), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != models.Columns[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, models.Columns[i], h)
		}
	}

	var out []models.PriceRecord
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		// Structure is strict: exactly 7 columns or the whole load fails.
		if len(row) != len(models.Columns) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(models.Columns), len(row))
		}

		out = append(out, rowToRecord(row))
	}

	return out, nil
}

// rowToRecord converts a single CSV row (already validated length==7)
// into a models.PriceRecord. Cell-level coercion failures are not
// errors: the offending field is simply left absent, which feeds the
// null-drop cleaning rule downstream.
//
// Column order:
//
//	0 date   → Date (raw text, parsed later by the cleaner)
//	1 open   → Open (float, empty/invalid → absent)
//	2 high   → High (float, empty/invalid → absent)
//	3 low    → Low (float, empty/invalid → absent)
//	4 close  → Close (float, empty/invalid → absent)
//	5 volume → Volume (non-negative int, empty/invalid → absent)
//	6 Name   → Name (ticker symbol)
func rowToRecord(row []string) models.PriceRecord {
	var rec models.PriceRecord

	rec.Date = strings.TrimSpace(row[0])
	rec.Open = parseFloatCell(row[1])
	rec.High = parseFloatCell(row[2])
	rec.Low = parseFloatCell(row[3])
	rec.Close = parseFloatCell(row[4])
	rec.Volume = parseVolumeCell(row[5])
	rec.Name = strings.TrimSpace(row[6])

	return rec
}

func parseFloatCell(cell string) *float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseVolumeCell rejects negative volumes along with non-numeric text.
func parseVolumeCell(cell string) *int64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
