package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// ServerConfig supplies the per-request timeout.
	ServerConfig *config.ServerConfig

	// Tokens verifies bearer tokens on the quote routes.
	Tokens ports.TokenManager

	// HealthHandler handles the /-/ endpoints.
	HealthHandler *handlers.HealthHandler

	// AuthHandler handles /auth.
	AuthHandler *handlers.AuthHandler

	// QuoteHandler handles /quotes.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. ErrorHandler - renders errors attached with c.Error
//
// Route groups:
//   - /-/ (internal): health, build and metrics endpoints, no auth
//   - /auth: signup and signin, no auth
//   - /quotes: bearer session required
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(),
		middleware.ErrorHandler(MapDomainError),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("")
	if cfg.ServerConfig != nil {
		api.Use(middleware.Timeout(cfg.ServerConfig.RequestTimeout))
	}

	if cfg.AuthHandler != nil {
		cfg.AuthHandler.RegisterAuthRoutes(api)
	}

	if cfg.QuoteHandler != nil {
		quotes := api.Group("/quotes", middleware.RequireSession(cfg.Tokens))
		cfg.QuoteHandler.RegisterQuoteRoutes(quotes)
	}
}
