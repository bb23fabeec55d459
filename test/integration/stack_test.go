//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/alien-survival-api/internal/adapters/http"
	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/alien-survival-api/internal/adapters/random"
	"github.com/jsamuelsen/alien-survival-api/internal/app"
	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/config"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/telemetry"
	"github.com/jsamuelsen/alien-survival-api/internal/ports"
)

// configDir is the repo's configs/ directory relative to this package.
const configDir = "../../configs"

// stack is an in-process instance of the service wired like cmd/service.
type stack struct {
	server   *httptest.Server
	catalog  *domain.Catalog
	registry *prometheus.Registry
}

// startStack wires the service from cfg and serves it on a random port.
func startStack(t testing.TB, cfg *config.Config) *stack {
	t.Helper()

	srv, st, err := buildServer(cfg)
	require.NoError(t, err)

	st.server = httptest.NewServer(srv.Engine())
	t.Cleanup(st.server.Close)

	return st
}

// loadStackConfig loads a profile from the repo's configs/ directory.
func loadStackConfig(t testing.TB, profile string) *config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(configDir, profile)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	return cfg
}

func buildServer(cfg *config.Config) (*httpadapter.Server, *stack, error) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	catalog, err := domain.NewCatalog(cfg.Advice.FallbackSign)
	if err != nil {
		return nil, nil, err
	}

	picker, err := random.New(catalog.Songs(), cfg.Advice.RandomSeed)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()

	metrics, err := telemetry.NewAdviceMetrics(reg)
	if err != nil {
		return nil, nil, err
	}

	svc := app.NewAdviceService(app.AdviceServiceConfig{
		Catalog:  catalog,
		Picker:   picker,
		Recorder: metrics,
		Logger:   logger,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(app.NewCatalogChecker(catalog)); err != nil {
		return nil, nil, err
	}

	srv := httpadapter.New(&cfg.Server, logger)

	httpadapter.SetupRouter(srv.Engine(), httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		APIPrefix:     cfg.Advice.APIPrefix,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "never")),
		AdviceHandler: handlers.NewAdviceHandler(svc, cfg.Advice.RedactErrors),
		SignHandler:   handlers.NewSignHandler(svc, cfg.Advice.RedactErrors),
	})

	return srv, &stack{catalog: catalog, registry: reg}, nil
}
