package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is seeded into every request context.
	Logger *slog.Logger

	// ServiceName names the otel server spans.
	ServiceName string

	// APIPrefix mounts the public routes a second time, e.g. under /api.
	// Empty mounts them at the root only.
	APIPrefix string

	HealthHandler *handlers.HealthHandler
	AdviceHandler *handlers.AdviceHandler
	SignHandler   *handlers.SignHandler
}

// routeRegistrar is implemented by handlers that own public routes.
type routeRegistrar interface {
	RegisterRoutes(rg gin.IRoutes)
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - seed the request logger
//  3. Request ID / Correlation ID
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips /-/ and health)
//
// Route groups:
//   - /-/ (operational): live, ready, build, metrics
//   - / and APIPrefix (public): /generate-advice, /health, /zodiac-sign
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	prefix := strings.TrimSuffix(cfg.APIPrefix, "/")

	skip := []string{"/health"}
	if prefix != "" {
		skip = append(skip, prefix+"/health")
	}

	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(skip...))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	registerPublicRoutes(&engine.RouterGroup, cfg)

	if prefix != "" {
		registerPublicRoutes(engine.Group(prefix), cfg)
	}
}

func registerPublicRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	registrars := []routeRegistrar{}

	if cfg.HealthHandler != nil {
		registrars = append(registrars, cfg.HealthHandler)
	}

	if cfg.AdviceHandler != nil {
		registrars = append(registrars, cfg.AdviceHandler)
	}

	if cfg.SignHandler != nil {
		registrars = append(registrars, cfg.SignHandler)
	}

	for _, r := range registrars {
		r.RegisterRoutes(rg)
	}
}
