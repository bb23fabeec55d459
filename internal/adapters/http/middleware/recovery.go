package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/alien-survival-api/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into a 500 response with the
// standard error envelope. The panic value never reaches the client; it is
// logged at ERROR together with the stack.
//
// Recovery must be the first middleware in the chain.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			traceID := dto.GetTraceID(c)

			logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.MessageInternal).WithTraceID(traceID))
		}()

		c.Next()
	}
}
