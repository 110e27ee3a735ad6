package app

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/sppulse/sppulse/config"
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres initializes a PostgreSQL connection using the provided
// configuration.
//
// Behavior:
//   - Constructs a DSN from cfg.Postgres.
//   - Opens a database handle with sql.Open.
//   - Immediately pings the database to validate connectivity.
//
// Returns:
//   - *sql.DB: an open database connection pool (safe for concurrent use).
//   - error: if opening or pinging the database fails.
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	db, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
