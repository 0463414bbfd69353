package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "rtb-pacing/internal/adapter/http"
	"rtb-pacing/internal/adapter/memory"
	"rtb-pacing/internal/adapter/postgres"
	promadapter "rtb-pacing/internal/adapter/prometheus"
	"rtb-pacing/internal/adapter/usecase"
	"rtb-pacing/internal/config"
	"rtb-pacing/internal/core/port"
	"rtb-pacing/internal/db"
)

// main is the entry point of the pacing simulation service. It loads
// configuration, selects the scenario catalog (PostgreSQL or the built-in
// one), wires the Prometheus recorder and starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := campaignRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("campaign catalog error", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeRepo()

	var (
		opts    []usecase.Option
		metrics http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rec := promadapter.NewRecorder(cfg.Metrics.Namespace, reg)
		opts = append(opts, usecase.WithRecorder(rec))
		metrics = rec.Handler()
	}

	svc := usecase.NewSimulationUseCase(repo, usecase.ParamsFromConfig(cfg.Sim), logger, opts...)

	handler := httpadapter.NewHandler(svc, logger, metrics)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// campaignRepository returns the PostgreSQL catalog when enabled, running
// migrations and seeding the default scenario first if configured.
// Otherwise the built-in scenario is served from memory.
func campaignRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	if !cfg.Psql.Enabled {
		logger.Info("using built-in scenario catalog")
		return memory.NewCampaignRepository(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = seed(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("scenario catalog seeded")
	}

	return postgres.NewCampaignRepository(pool), pool.Close, nil
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := db.Seed(ctx, pool, memory.DefaultCampaigns); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
