// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/ports"
)

const (
	tracerName = "github.com/jsamuelsen/alien-survival-api/internal/app"

	// birthdateLayout is the only accepted birthdate format.
	birthdateLayout = time.DateOnly
)

// AdviceService assembles survival advice from the catalog and a song draw.
// It depends on port interfaces, not concrete implementations.
type AdviceService struct {
	catalog  *domain.Catalog
	picker   ports.SongPicker
	recorder ports.AdviceRecorder
	logger   *slog.Logger
	tracer   trace.Tracer
}

// AdviceServiceConfig contains dependencies for the advice service.
type AdviceServiceConfig struct {
	Catalog  *domain.Catalog
	Picker   ports.SongPicker
	Recorder ports.AdviceRecorder // optional
	Logger   *slog.Logger         // defaults to slog.Default()
}

// NewAdviceService creates an advice service. It panics if the catalog or
// picker is missing.
func NewAdviceService(cfg AdviceServiceConfig) *AdviceService {
	if cfg.Catalog == nil {
		panic("app: AdviceServiceConfig.Catalog is required")
	}

	if cfg.Picker == nil {
		panic("app: AdviceServiceConfig.Picker is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AdviceService{
		catalog:  cfg.Catalog,
		picker:   cfg.Picker,
		recorder: cfg.Recorder,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// Generate implements ports.AdviceGenerator.
func (s *AdviceService) Generate(ctx context.Context, req domain.Request) (domain.Advice, error) {
	ctx, span := s.tracer.Start(ctx, "advice.generate")
	defer span.End()

	profile, known := s.catalog.Profile(req.ZodiacSign)

	sign := req.ZodiacSign
	if !known {
		sign = s.catalog.Fallback()

		s.logger.WarnContext(ctx, "unknown zodiac sign, using fallback profile",
			slog.String("requested_sign", req.ZodiacSign),
			slog.String("fallback_sign", sign),
		)
	}

	song, err := s.picker.Pick()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "song pick failed")

		s.logger.ErrorContext(ctx, "failed to pick song", slog.Any("error", err))

		return domain.Advice{}, domain.NewRequestProcessingError("pick song", err)
	}

	advice := domain.NewAdvice(profile, req.FavoriteColor, song)
	advice.Sign = sign
	advice.Fallback = !known

	span.SetAttributes(
		attribute.String("advice.sign", sign),
		attribute.Bool("advice.fallback", !known),
	)

	if s.recorder != nil {
		s.recorder.RecordAdvice(sign, !known)
	}

	s.logger.DebugContext(ctx, "generated advice",
		slog.String("sign", sign),
		slog.String("song", song),
	)

	return advice, nil
}

// ResolveSign implements ports.SignResolver.
func (s *AdviceService) ResolveSign(ctx context.Context, birthdate string) (domain.Sign, error) {
	_, span := s.tracer.Start(ctx, "advice.resolve_sign")
	defer span.End()

	if birthdate == "" {
		return domain.Sign{}, domain.NewValidationError("birthdate", "is required")
	}

	t, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return domain.Sign{}, domain.NewValidationErrorWithValue("birthdate", "must be formatted as YYYY-MM-DD", birthdate)
	}

	sign := s.catalog.SignFor(domain.MonthDay{Month: int(t.Month()), Day: t.Day()})
	span.SetAttributes(attribute.String("advice.sign", sign.Name))

	return sign, nil
}

// CatalogChecker reports the advice catalog as a readiness dependency.
type CatalogChecker struct {
	catalog *domain.Catalog
}

// NewCatalogChecker creates a health checker for catalog.
func NewCatalogChecker(catalog *domain.Catalog) *CatalogChecker {
	return &CatalogChecker{catalog: catalog}
}

// Name implements ports.HealthChecker.
func (c *CatalogChecker) Name() string {
	return "catalog"
}

// Check implements ports.HealthChecker.
func (c *CatalogChecker) Check(_ context.Context) error {
	return c.catalog.Validate()
}

var (
	_ ports.AdviceGenerator = (*AdviceService)(nil)
	_ ports.SignResolver    = (*AdviceService)(nil)
	_ ports.HealthChecker   = (*CatalogChecker)(nil)
)
