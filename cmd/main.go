package main

//
//  @title           sppulse API
//  @version         1.0
//  @description     S&P 500 daily bar cleaning & query service.
//  @termsOfService  https://github.com/sppulse/sppulse
//  @contact.name    API Support
//  @contact.url     https://github.com/sppulse/sppulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        summary
//  @tag.description Ticker distribution statistics
//
//  @tag.name        gains
//  @tag.description Investment gains simulation
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sppulse/sppulse/config"
	_ "github.com/sppulse/sppulse/docs" // swagger docs
	"github.com/sppulse/sppulse/internal/app"
	"github.com/sppulse/sppulse/internal/ingestion"
	"github.com/sppulse/sppulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the sppulse application.
//
// Modes (selected via --mode flag):
//   - clean:  One-shot batch run — load the raw daily bar CSV, report
//     data quality, clean it, write the cleaned CSV, and log the
//     per-ticker summary.
//   - ingest: Clean as above, then bulk-load the cleaned records into
//     PostgreSQL.
//   - api:    Start the REST API exposing summary and gains queries.
//
// Flags:
//   - --mode:  Execution mode ("clean", "ingest", or "api"). Default: "clean".
//   - --in:    Raw CSV path. Defaults to value from config (INPUT_PATH).
//   - --out:   Cleaned CSV path. Defaults to value from config (OUTPUT_PATH).
//   - --force: Re-ingest a file even if already recorded (deletes its existing rows).
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "clean", "Mode: clean, ingest, or api")
	in := flag.String("in", config.AppConfig.Pipeline.InputPath, "Raw daily bar CSV")
	out := flag.String("out", config.AppConfig.Pipeline.OutputPath, "Destination for the cleaned CSV")
	force := flag.Bool("force", false, "Reprocess a file even if already ingested (deletes its existing rows)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "clean":
		logger.L().Info().Str("in", *in).Str("out", *out).Msg("running cleaning pipeline")
		if _, err := ingestion.Run(ctx, *in, *out); err != nil {
			logger.L().Fatal().Err(err).Msg("cleaning failed")
		}
		logger.L().Info().Msg("cleaning completed successfully")

	case "ingest":
		logger.L().Info().Str("in", *in).Msg("running ingestion")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := ingestion.Ingest(ctx, *in, db, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
