package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys added to request-scoped loggers.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
)

type loggerKey struct{}

// fallback is returned by FromContext when ctx carries no logger.
var fallback atomic.Pointer[slog.Logger]

func init() {
	fallback.Store(slog.Default())
}

// FromContext returns the request logger stored in ctx, or the process
// logger set by SetDefault. A nil ctx is allowed.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return fallback.Load()
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithRequestID tags the context logger with the X-Request-ID value.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttr(ctx, KeyRequestID, requestID)
}

// WithCorrelationID tags the context logger with the X-Correlation-ID value.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withAttr(ctx, KeyCorrelationID, correlationID)
}

// WithTraceID tags the context logger with the otel trace ID, so advice
// logs can be joined with their spans.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withAttr(ctx, KeyTraceID, traceID)
}

func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// SetDefault installs logger as the process logger, both for FromContext and
// for slog.Default.
func SetDefault(logger *slog.Logger) {
	fallback.Store(logger)
	slog.SetDefault(logger)
}
