// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http"
	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/alien-survival-api/internal/adapters/random"
	"github.com/jsamuelsen/alien-survival-api/internal/app"
	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/config"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/logging"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/telemetry"
	"github.com/jsamuelsen/alien-survival-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// Noop when disabled.
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	catalog, err := domain.NewCatalog(cfg.Advice.FallbackSign)
	if err != nil {
		return fmt.Errorf("loading advice catalog: %w", err)
	}

	picker, err := random.New(catalog.Songs(), cfg.Advice.RandomSeed)
	if err != nil {
		return fmt.Errorf("creating song picker: %w", err)
	}

	metrics, err := telemetry.NewAdviceMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering advice metrics: %w", err)
	}

	adviceService := app.NewAdviceService(app.AdviceServiceConfig{
		Catalog:  catalog,
		Picker:   picker,
		Recorder: metrics,
		Logger:   logger,
	})

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(app.NewCatalogChecker(catalog)); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		APIPrefix:     cfg.Advice.APIPrefix,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, buildInfo),
		AdviceHandler: handlers.NewAdviceHandler(adviceService, cfg.Advice.RedactErrors),
		SignHandler:   handlers.NewSignHandler(adviceService, cfg.Advice.RedactErrors),
	})

	logger.Info("advice catalog ready",
		slog.String("fallback_sign", catalog.Fallback()),
		slog.Int("songs", len(catalog.Songs())),
		slog.String("api_prefix", cfg.Advice.APIPrefix),
	)

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server error, then
// drains in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}

		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
