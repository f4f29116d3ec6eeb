// Package main is the entry point for the SIMRS budget dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/simrs-budget/backend/config"
	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
	"github.com/simrs-budget/backend/internal/infra/db"
	"github.com/simrs-budget/backend/internal/infra/dependency"
	"github.com/simrs-budget/backend/internal/infra/jobs"
	"github.com/simrs-budget/backend/internal/integration/cache"
	"github.com/simrs-budget/backend/internal/integration/email"
	"github.com/simrs-budget/backend/internal/integration/persistence"
	"github.com/simrs-budget/backend/internal/integration/persistence/model"
	"github.com/simrs-budget/backend/internal/integration/sheets"
	"github.com/simrs-budget/backend/internal/integration/spreadsheet"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting SIMRS budget API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
	)

	// Initialize the problem-document store backend
	store, cleanup, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize problem-document store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Initialize the drive source for the two ledger exports
	source := spreadsheet.NewDriveSource(map[adapter.SourceID]string{
		adapter.SourceAllocations:  cfg.Sources.AllocationsURL,
		adapter.SourceTransactions: cfg.Sources.TransactionsURL,
	}, cfg.Sources.FetchTimeout)

	// Optional Redis snapshot cache
	var snapshotCache adapter.SnapshotCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
		snapshotCache = cache.NewSnapshotCache(client, cfg.Redis.TTL)
		slog.Info("Snapshot cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	// Optional over-budget alert sender
	var sender adapter.EmailSender
	if cfg.Alerts.Enabled && cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	injector := dependency.NewInjector(cfg, store, source, snapshotCache, sender)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Load the dataset once at startup. A failed load is not fatal: the
	// report endpoints answer 503 until the first successful cycle.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Refresh.Timeout)
	if output, err := injector.LoadUseCase.Execute(loadCtx, dataset.LoadDatasetInput{}); err != nil {
		slog.Warn("Initial dataset load failed, starting without data", "error", err)
	} else {
		slog.Info("Initial dataset loaded",
			"allocations", len(output.Dataset.Allocations),
			"transactions", len(output.Dataset.Transactions),
		)
	}
	loadCancel()

	// Scheduled refresh
	if cfg.Refresh.Enabled {
		scheduler, err := jobs.NewRefreshScheduler(
			injector.LoadUseCase,
			cfg.Refresh.Schedule,
			cfg.Refresh.Timezone,
			cfg.Refresh.Timeout,
		)
		if err != nil {
			slog.Error("Failed to create refresh scheduler", "error", err)
			os.Exit(1)
		}
		if err := scheduler.Start(); err != nil {
			slog.Error("Failed to start refresh scheduler", "error", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
		slog.Info("Dataset refresh scheduled", "schedule", cfg.Refresh.Schedule, "timezone", cfg.Refresh.Timezone)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildStore constructs the problem-document store for the configured backend
// and returns a cleanup function for its underlying connection.
func buildStore(cfg *config.Config) (adapter.ProblemDocumentStore, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSheets:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := sheets.NewProblemDocumentStore(
			ctx,
			cfg.Store.SheetsCredentialsFile,
			cfg.Store.SheetsSpreadsheetID,
			cfg.Store.SheetsSheetName,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("sheets store: %w", err)
		}
		return store, func() {}, nil

	case config.StoreBackendPostgres:
		conn, err := db.Open(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection: %w", err)
		}
		if err := conn.AutoMigrate(
			&model.ProblemDocumentModel{},
			&model.ProblemDocumentVersionModel{},
		); err != nil {
			_ = db.Close(conn)
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		cleanup := func() {
			if err := db.Close(conn); err != nil {
				slog.Error("failed to close database connection", "error", err)
			}
		}
		return persistence.NewProblemDocumentStore(conn), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
