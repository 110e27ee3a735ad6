package storage

import (
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/sppulse/sppulse/internal/domain/models"
)

// PriceWindow holds the two prices the gains simulation needs: the
// opening price on the start date and the closing price on the end date.
type PriceWindow struct {
	OpenAtStart float64
	CloseAtEnd  float64
}

// PricesRepository defines the contract for DB operations over cleaned
// daily price records.
type PricesRepository interface {
	InsertPricesBatch(source string, records []models.PriceRecord) error
	HasIngestionForFile(name string) (bool, error)
	UpsertIngestionLog(name string, rowCount int) error
	DeletePricesBySource(name string) error
	GetTickerCounts() (map[string]int, error)
	GetPriceWindow(ticker string, start, end time.Time) (*PriceWindow, error)
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

// InsertPricesBatch inserts multiple cleaned records into the DB in a
// single transaction using the Postgres COPY protocol.
//
// Records are expected to be fully cleaned already: every field present
// and the date coerced. Source tags each row with the file it came
// from, so a forced re-ingest can remove exactly its own rows.
func (r *pricesRepository) InsertPricesBatch(source string, records []models.PriceRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"daily_prices",
		"day",
		"open",
		"high",
		"low",
		"close",
		"volume",
		"symbol",
		"source_file",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.Day,
			deref(rec.Open),
			deref(rec.High),
			deref(rec.Low),
			deref(rec.Close),
			derefInt(rec.Volume),
			rec.Name,
			source,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// deref maps an absent numeric field to a database NULL. Cleaned
// records never carry nils, but the schema tolerates them.
func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// HasIngestionForFile checks if an ingestion was already recorded for a
// given source file.
func (r *pricesRepository) HasIngestionForFile(name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE filename = $1)`, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a
// given source file.
func (r *pricesRepository) UpsertIngestionLog(name string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, name, rowCount)
	return err
}

// DeletePricesBySource removes all rows loaded from a given source file.
func (r *pricesRepository) DeletePricesBySource(name string) error {
	_, err := r.db.Exec(`DELETE FROM daily_prices WHERE source_file = $1`, name)
	return err
}

// GetTickerCounts returns the record count per ticker symbol.
func (r *pricesRepository) GetTickerCounts() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT symbol, COUNT(*) FROM daily_prices GROUP BY symbol`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var symbol string
		var n int
		if err := rows.Scan(&symbol, &n); err != nil {
			return nil, err
		}
		counts[symbol] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetPriceWindow returns the opening price on the start date and the
// closing price on the end date for a ticker. A nil window (and nil
// error) means no data exists for one of the two dates.
func (r *pricesRepository) GetPriceWindow(ticker string, start, end time.Time) (*PriceWindow, error) {
	query := `
		SELECT
			(SELECT open  FROM daily_prices WHERE symbol = $1 AND day = $2) AS open_at_start,
			(SELECT close FROM daily_prices WHERE symbol = $1 AND day = $3) AS close_at_end
	`

	var openAtStart, closeAtEnd sql.NullFloat64
	if err := r.db.QueryRow(query, ticker, start, end).Scan(&openAtStart, &closeAtEnd); err != nil {
		return nil, err
	}

	if !openAtStart.Valid || !closeAtEnd.Valid {
		return nil, nil
	}

	return &PriceWindow{
		OpenAtStart: openAtStart.Float64,
		CloseAtEnd:  closeAtEnd.Float64,
	}, nil
}
