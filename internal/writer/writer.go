// Package writer serializes cleaned record sequences back to delimited
// text, header row included, record order preserved.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sppulse/sppulse/internal/domain/models"
)

// WriteFile creates (or overwrites) the file at path and serializes the
// records as CSV with the original column names and order. No row index
// column is emitted.
//
// Fails if the destination cannot be created or written; the wrapped
// error carries the underlying path error.
func WriteFile(records []models.PriceRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if err := Write(records, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// Write streams the records as CSV to any destination.
func Write(records []models.PriceRecord, dst io.Writer) error {
	w := csv.NewWriter(dst)

	if err := w.Write(models.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if err := w.Write(rec.Fields()); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
