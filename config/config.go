package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the batch pipeline's file paths, HTTP server settings, and
// Postgres connection details.
//
// Example YAML/ENV equivalent:
//
//	INPUT_PATH=./data/all_stocks_5yr.csv
//	OUTPUT_PATH=./data/all_stocks_5yr_clean.csv
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=sppulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Pipeline PipelineConfig // Batch cleaning pipeline settings
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
}

// PipelineConfig holds default file locations for the cleaning pipeline.
// Both can be overridden per run via CLI flags.
type PipelineConfig struct {
	InputPath  string // Raw daily bar CSV read by the loader
	OutputPath string // Destination for the cleaned CSV
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
func LoadConfig() {
	// Default values
	viper.SetDefault("INPUT_PATH", "./data/all_stocks_5yr.csv")
	viper.SetDefault("OUTPUT_PATH", "./data/all_stocks_5yr_clean.csv")

	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "sppulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Pipeline: PipelineConfig{
			InputPath:  viper.GetString("INPUT_PATH"),
			OutputPath: viper.GetString("OUTPUT_PATH"),
		},
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Pipeline.InputPath == "" {
		missing = append(missing, "INPUT_PATH")
	}
	if AppConfig.Pipeline.OutputPath == "" {
		missing = append(missing, "OUTPUT_PATH")
	}
	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
