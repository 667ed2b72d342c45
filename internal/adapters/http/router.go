package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotekeeper/internal/platform/config"
	"github.com/jsamuelsen/quotekeeper/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for page requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles liveness, readiness and metrics endpoints.
	HealthHandler *handlers.HealthHandler

	// HomeHandler renders the landing page.
	HomeHandler *handlers.HomeHandler

	// AuthorHandler serves the author pages.
	AuthorHandler *handlers.AuthorHandler

	// QuoteHandler serves the quote pages.
	QuoteHandler *handlers.QuoteHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips /-/ endpoints)
//  6. Timeout - request deadline on page routes
//
// Route groups:
//   - /-/ (internal): liveness, readiness, metrics; no timeout for probes
//   - / (pages): the author and quote catalog surface
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	pages := engine.Group("")
	if cfg.Timeout > 0 {
		pages.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.HomeHandler != nil {
		cfg.HomeHandler.RegisterRoutes(pages)
	}

	if cfg.AuthorHandler != nil {
		cfg.AuthorHandler.RegisterRoutes(pages)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterRoutes(pages)
	}
}
