package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/alien-survival-api/internal/platform/logging"
)

// ContextLogger returns middleware that stores logger in the request context.
// It must run before RequestID and CorrelationID, which enrich that logger.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
