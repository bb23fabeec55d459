// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/logging"
)

// Generic messages used when the real cause must not reach the client.
const (
	// MessageInternal replaces internal error messages when redaction is on.
	MessageInternal = "an internal error occurred"

	// MessageValidation is the summary for query validation failures.
	MessageValidation = "request validation failed"
)

// ErrorResponse is the error envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// Details holds field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`

	TraceID string `json:"traceId,omitempty"`
}

// NewErrorResponse creates an error response with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: message, Details: details}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// ErrorMapper converts errors into HTTP responses.
type ErrorMapper struct {
	// Redact replaces 500 messages with MessageInternal.
	Redact bool
}

// Map returns the status code and response body for err.
//
// Request processing errors keep their message unless Redact is set.
// Validation errors map to 400. Anything else is a 500 with a generic message.
func (m ErrorMapper) Map(err error) (int, *ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsValidation(err):
		resp := NewErrorResponse(err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsRequestProcessing(err):
		msg := err.Error()
		if m.Redact || msg == "" {
			msg = MessageInternal
		}

		return http.StatusInternalServerError, NewErrorResponse(msg)

	default:
		return http.StatusInternalServerError, NewErrorResponse(MessageInternal)
	}
}

// Handle writes the error response for err and logs internal errors.
// A nil err writes nothing.
func (m ErrorMapper) Handle(c *gin.Context, err error) {
	if err == nil {
		return
	}

	status, resp := m.Map(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Any("error", err),
			slog.Int("status", status),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// HandleError writes an unredacted error response for err.
func HandleError(c *gin.Context, err error) {
	ErrorMapper{}.Handle(c, err)
}

// RespondWithValidationErrors writes a 400 response with field-level messages.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	resp := NewErrorResponseWithDetails(MessageValidation, fieldErrors)
	resp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// GetTraceID returns the active trace ID, or "" when tracing is off.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
