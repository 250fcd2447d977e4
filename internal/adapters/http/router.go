package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotastic/quotastic/internal/adapters/http/handlers"
	"github.com/quotastic/quotastic/internal/adapters/http/middleware"
	"github.com/quotastic/quotastic/internal/platform/config"
	"github.com/quotastic/quotastic/internal/platform/metrics"
	"github.com/quotastic/quotastic/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// Metrics is the Prometheus registry observing every request.
	Metrics *metrics.Registry

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote and stats endpoints.
	QuoteHandler *handlers.QuoteHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing
//  5. Prometheus - request counters and latency histogram
//  6. Logging - request logging (skips health endpoints)
//  7. Timeout - request deadline (applied to the API group)
//
// Route groups:
//   - /-/ (internal): Health and metrics endpoints
//   - /api/v1/ (public API): Quote and stats endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
	)

	if cfg.Metrics != nil {
		engine.Use(metrics.Middleware(cfg.Metrics))
	}

	engine.Use(middleware.Logging(cfg.Logger))

	engine.NoRoute(NotFoundHandler())
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(MethodNotAllowedHandler())

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}
}
