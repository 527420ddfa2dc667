package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/fakerecords/internal/config"
	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/JonMunkholm/fakerecords/internal/database"
	"github.com/JonMunkholm/fakerecords/internal/faker"
	"github.com/JonMunkholm/fakerecords/internal/logging"
	"github.com/JonMunkholm/fakerecords/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"region_policy", cfg.Generator.RegionPolicy,
		"max_count", cfg.Generator.MaxCount,
		"database_export", cfg.Database.Enabled(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	policy, err := core.ParseRegionPolicy(cfg.Generator.RegionPolicy)
	if err != nil {
		slog.Error("invalid region policy", "error", err)
		os.Exit(1)
	}

	gen := core.NewGenerator(faker.Factory,
		core.WithRegionPolicy(policy),
		core.WithMaxCount(cfg.Generator.MaxCount),
	)
	service := core.NewService(gen, faker.NoiseFactory, core.ServiceConfig{
		CacheSize:     cfg.Generator.CacheSize,
		MaxConcurrent: cfg.Generator.MaxConcurrent,
		MaxWaitTime:   cfg.Generator.MaxWaitTime,
	})

	// The database is optional; without it the Postgres export answers 503.
	var sink web.RecordSink
	if cfg.Database.Enabled() {
		ctx := context.Background()
		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		store := database.NewRecordStore(pool, cfg.Database.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare export table", "table", store.Table(), "error", err)
			os.Exit(1)
		}
		sink = store
	} else {
		slog.Info("no DATABASE_URL set, database export disabled")
	}

	server := web.NewServer(service, sink, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Let in-flight generations finish before closing connections
		if status := service.LimiterStatus(); status.Active > 0 {
			slog.Info("waiting for generations to complete", "active", status.Active)
			if err := service.WaitForGenerations(shutdownCtx); err != nil {
				slog.Warn("generations did not complete in time", "error", err)
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
