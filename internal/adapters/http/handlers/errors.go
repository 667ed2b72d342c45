package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
)

// statusFromError maps a domain error to an HTTP status code.
// Unknown errors map to 500.
func statusFromError(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsConflict(err):
		return http.StatusConflict
	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderError renders the error page for the given domain error.
// Client errors carry the domain message so the user can correct their
// input; server errors get a generic message to avoid leaking internals,
// and are logged with full details.
func renderError(c *gin.Context, err error) {
	status := statusFromError(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		var traceID string
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
			traceID = span.SpanContext().TraceID().String()
		}

		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"trace_id", traceID,
		)

		message = "an internal error occurred"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		message = validationErr.Field + ": " + validationErr.Message
	}

	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": message,
	})
}
