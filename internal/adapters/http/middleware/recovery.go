package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics.
// On panic, it logs the error with a full stack trace at ERROR level and
// renders the error page with a 500 status. Apply it first in the chain so
// it catches panics from everything downstream.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				ctxLogger := logging.FromContext(c.Request.Context())

				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				ctxLogger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(stack)),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
					slog.String("trace_id", traceID),
				)

				if !c.Writer.Written() {
					c.HTML(http.StatusInternalServerError, "error.html", gin.H{
						"status":  http.StatusInternalServerError,
						"message": "an internal error occurred",
					})
				}

				c.Abort()
			}
		}()

		c.Next()
	}
}
