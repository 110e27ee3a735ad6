package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sppulse/sppulse/internal/cleaning"
	"github.com/sppulse/sppulse/internal/domain/models"
	"github.com/sppulse/sppulse/internal/logger"
	"github.com/sppulse/sppulse/internal/quality"
	"github.com/sppulse/sppulse/internal/storage"
	"github.com/sppulse/sppulse/internal/summary"
	"github.com/sppulse/sppulse/internal/writer"
)

const defaultBatchSize = 5000

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PricesRepository {
	return storage.NewPricesRepository(db)
}

// Result carries what one pipeline run produced.
type Result struct {
	Loaded  int
	Cleaned int
	Report  quality.Report
	Summary models.Summary
}

// Run executes the file-to-file batch pipeline:
//
//	load → quality report → clean (null-drop, date coercion, dedupe) →
//	write cleaned CSV + summarize (concurrently, both over the same
//	fully-cleaned sequence)
//
// Parameters:
//   - ctx:     context for cancellation.
//   - inPath:  raw daily bar CSV.
//   - outPath: destination for the cleaned CSV.
//
// Returns:
//   - *Result: counts, quality report, and ticker summary.
//   - error: first fatal error (unreadable input, malformed structure,
//     unwritable output).
func Run(ctx context.Context, inPath, outPath string) (*Result, error) {
	start := time.Now()

	records, err := LoadFile(ctx, inPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inPath, err)
	}
	logger.L().Info().Int("rows", len(records)).Str("file", filepath.Base(inPath)).Msg("load done")

	rep := quality.Check(records)
	for _, col := range models.Columns {
		if n := rep.NullCounts[col]; n > 0 {
			logger.L().Warn().Str("column", col).Int("nulls", n).Msg("missing values")
		}
	}
	logger.L().Info().Int("total_rows", rep.TotalRows).Int("complete_rows", rep.CompleteRows).Msg("quality report")

	cleaned := cleaning.Clean(records)
	logger.L().Info().Int("kept", len(cleaned)).Int("dropped", len(records)-len(cleaned)).Msg("cleaning done")

	// The writer and the summarizer consume the cleaned sequence
	// independently; run them side by side.
	res := &Result{Loaded: len(records), Cleaned: len(cleaned), Report: rep}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := writer.WriteFile(cleaned, outPath); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		return nil
	})
	g.Go(func() error {
		res.Summary = summary.Summarize(cleaned)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.L().Info().
		Int("tickers", res.Summary.Tickers).
		Float64("mean_count", res.Summary.MeanCount).
		Int("min_count", res.Summary.MinCount).
		Int("max_count", res.Summary.MaxCount).
		Dur("elapsed", time.Since(start)).
		Msg("pipeline done")

	return res, nil
}

// Ingest runs the cleaning pipeline over inPath and bulk-loads the
// fully-cleaned records into PostgreSQL in batches, recording the run
// in the ingestion log keyed by source filename.
//
// Behavior:
//   - Skips the file if it was already ingested, unless force is set.
//   - With force, previously loaded rows for this source are deleted
//     and the file is reprocessed.
//   - Inserts in batches via pq.CopyIn (defaultBatchSize rows).
func Ingest(ctx context.Context, inPath string, db *sql.DB, force bool) error {
	repo := repoCtor(db)
	source := filepath.Base(inPath)
	start := time.Now()

	exists, err := repo.HasIngestionForFile(source)
	if err != nil {
		return fmt.Errorf("check ingestion log: %w", err)
	}
	if exists && !force {
		logger.L().Info().Str("file", source).Bool("skipped", true).Msg("already ingested")
		return nil
	}
	if exists && force {
		if err := repo.DeletePricesBySource(source); err != nil {
			return fmt.Errorf("delete existing: %w", err)
		}
	}

	records, err := LoadFile(ctx, inPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", inPath, err)
	}
	cleaned := cleaning.Clean(records)
	logger.L().Info().Str("file", source).Int("loaded", len(records)).Int("kept", len(cleaned)).Msg("ingest cleaning done")

	for offset := 0; offset < len(cleaned); offset += defaultBatchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := offset + defaultBatchSize
		if end > len(cleaned) {
			end = len(cleaned)
		}
		if err := repo.InsertPricesBatch(source, cleaned[offset:end]); err != nil {
			return fmt.Errorf("insert batch at row %d: %w", offset, err)
		}
	}

	if err := repo.UpsertIngestionLog(source, len(cleaned)); err != nil {
		return fmt.Errorf("upsert ingestion log: %w", err)
	}

	logger.L().Info().
		Str("file", source).
		Int("rows", len(cleaned)).
		Dur("elapsed", time.Since(start)).
		Bool("force", force).
		Msg("ingest done")
	return nil
}
