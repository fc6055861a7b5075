//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apphttp "github.com/jsamuelsen/quotes-api/internal/adapters/http"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/security"
	"github.com/jsamuelsen/quotes-api/internal/adapters/store"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/platform/metrics"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// testApp is the full service wired over a private in-memory SQLite store.
type testApp struct {
	server *httptest.Server
	store  *store.Store
}

// startTestApp wires every layer the way cmd/service does and serves it
// from an httptest server.
func startTestApp(ctx context.Context) (*testApp, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := store.Open(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	met, err := metrics.New()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hasher, err := security.NewBcryptHasher(4)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens, err := security.NewJWTManager(security.JWTConfig{
		Secret: "integration-secret-0123456789abcdef",
		Issuer: "quotes-api",
		TTL:    time.Hour,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(db.HealthChecker()); err != nil {
		_ = db.Close()
		return nil, err
	}

	authService := app.NewAuthService(app.AuthServiceConfig{
		Users: db.Users(), Hasher: hasher, Tokens: tokens, Metrics: met, Logger: logger,
	})
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:  db.Quotes(),
		Tags:    app.NewTagService(app.TagServiceConfig{Tags: db.Tags(), Metrics: met, Logger: logger}),
		Metrics: met,
		Logger:  logger,
	})

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.RouterConfig{
		AppConfig: &config.AppConfig{Name: "quotes-api", Version: "test", Environment: "test"},
		ServerConfig: &config.ServerConfig{
			RequestTimeout: 10 * time.Second,
			MaxRequestSize: config.DefaultMaxRequestSize,
		},
		Tokens:        tokens,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"), met.Handler()),
		AuthHandler:   handlers.NewAuthHandler(authService),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
	})

	return &testApp{server: httptest.NewServer(engine), store: db}, nil
}

// Close stops the server and releases the store.
func (a *testApp) Close() {
	a.server.Close()
	_ = a.store.Close()
}
