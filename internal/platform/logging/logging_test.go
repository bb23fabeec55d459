package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))

	return entry
}

// Context tests

func TestFromContext_NilContext(t *testing.T) {
	logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.Equal(t, fallback.Load(), logger)
}

func TestFromContext_NoLogger(t *testing.T) {
	assert.Equal(t, fallback.Load(), FromContext(context.Background()))
	assert.Equal(t, fallback.Load(), FromContext(WithContext(context.Background(), nil)))
}

func TestWithContext(t *testing.T) {
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithContext(context.Background(), customLogger)

	assert.Equal(t, customLogger, FromContext(ctx))
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "advice generated")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestSetDefault(t *testing.T) {
	originalDefault := fallback.Load()
	t.Cleanup(func() { SetDefault(originalDefault) })

	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(customLogger)

	assert.Equal(t, customLogger, FromContext(context.Background()))
	assert.Equal(t, customLogger, slog.Default())
}

// Logger tests

func TestNew(t *testing.T) {
	logger := New(&Config{Level: "info", Format: "json", Service: "alien-survival-api", Version: "1.0.0"})
	assert.NotNil(t, logger)
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "alien-survival-api",
		Version: "1.0.0",
	}, &buf)

	logger.Info("advice generated", slog.String("sign", "Leo"))

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "advice generated", entry["msg"])
	assert.Equal(t, "alien-survival-api", entry["service_name"])
	assert.Equal(t, "1.0.0", entry["service_version"])
	assert.Equal(t, "Leo", entry["sign"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "debug", Format: "text", Service: "alien-survival-api"}, &buf)
	logger.Debug("debug message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "service_name=alien-survival-api")
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "warn", Format: "json"}, &buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: "pretty", Service: "alien-survival-api"}, &buf)
	logger.Info("pretty message", slog.String("sign", "Virgo"))

	output := buf.String()
	assert.Contains(t, output, "pretty message")
	assert.Contains(t, output, "Virgo")
}

func TestNewWithWriter_PrettyFormatRedacts(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: "pretty"}, &buf)
	logger.With(slog.String("password", "hunter2")).
		WithGroup("profile").
		Info("received", slog.String("birthdate", "1990-08-01"))

	output := buf.String()
	assert.Contains(t, output, "received")
	assert.NotContains(t, output, "hunter2")
	assert.NotContains(t, output, "1990-08-01")
}

func TestNewWithWriter_WithFileConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "json",
		Service: "alien-survival-api",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}, &buf)

	logger.Info("message to file")

	assert.Contains(t, buf.String(), "message to file")
	require.FileExists(t, logFile)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "message to file")
}

func TestNewWithWriter_FileDisabledWithoutPath(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Format: "json", File: FileConfig{Enabled: true}}, &buf)
	logger.Info("terminal only")

	assert.Contains(t, buf.String(), "terminal only")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    slog.Level
		expected log.Level
	}{
		{"trace maps to debug", LevelTrace, log.DebugLevel},
		{"debug", slog.LevelDebug, log.DebugLevel},
		{"info", slog.LevelInfo, log.InfoLevel},
		{"warn", slog.LevelWarn, log.WarnLevel},
		{"error", slog.LevelError, log.ErrorLevel},
		{"very high maps to error", slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slogToCharmLevel(tt.input))
		})
	}
}

// MultiHandler tests

func TestMultiHandler_Enabled(t *testing.T) {
	multi := NewMultiHandler(
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

	strict := NewMultiHandler(
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.False(t, strict.Enabled(context.Background(), slog.LevelInfo))
}

func TestMultiHandler_HandleWithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("component", "advice")}).WithGroup("req"))
	logger.Info("info only to first", slog.String("sign", "Leo"))
	logger.Warn("warn to both")

	assert.Contains(t, buf1.String(), "info only to first")
	assert.Contains(t, buf1.String(), `"component":"advice"`)
	assert.Contains(t, buf1.String(), `"req":{"sign":"Leo"}`)
	assert.NotContains(t, buf2.String(), "info only to first")
	assert.Contains(t, buf2.String(), "warn to both")
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	return h.err
}

func TestMultiHandler_HandleJoinsErrors(t *testing.T) {
	var buf bytes.Buffer

	errDisk := errors.New("disk full")
	errPipe := errors.New("broken pipe")

	multi := NewMultiHandler(
		failingHandler{Handler: slog.NewJSONHandler(io.Discard, nil), err: errDisk},
		slog.NewJSONHandler(&buf, nil),
		failingHandler{Handler: slog.NewJSONHandler(io.Discard, nil), err: errPipe},
	)

	err := multi.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "advice generated", 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errPipe)
	assert.Contains(t, buf.String(), "advice generated", "healthy destinations still receive the record")
}

// Redaction tests

func TestDefaultRedactOptions(t *testing.T) {
	assert.Greater(t, len(DefaultRedactOptions()), 10)
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		fieldName    string
		fieldValue   string
		shouldRedact bool
	}{
		{"password", "secret123", true},
		{"token", "my-secret-token", true},
		{"api_key", "api-key-value", true},
		{"authorization", "Bearer token123", true},
		{"secret_config", "sensitive-data", true},
		{"birthdate", "1990-08-01", true},
		{"birthplace", "Roswell, NM", true},
		{"nickname", "Starchild", true},
		{"sign", "Leo", false},
		{"favorite_color", "purple", false},
	}

	for _, tt := range tests {
		t.Run(tt.fieldName, func(t *testing.T) {
			var buf bytes.Buffer
			handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()})

			slog.New(handler).Info("test", slog.String(tt.fieldName, tt.fieldValue))

			output := buf.String()
			assert.Contains(t, output, tt.fieldName)

			if tt.shouldRedact {
				assert.NotContains(t, output, tt.fieldValue)
				assert.True(t,
					strings.Contains(output, "REDACTED") || strings.Contains(output, "***"),
					"output should contain redaction marker",
				)
			} else {
				assert.Contains(t, output, tt.fieldValue)
			}
		})
	}
}

func TestNewReplaceAttr_BearerPattern(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()})

	slog.New(handler).Info("test", slog.String("header", "Bearer abc123xyz456"))

	assert.NotContains(t, buf.String(), "abc123xyz456")
}
