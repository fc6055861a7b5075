// Package main is the entry point for the quotes API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/security"
	"github.com/jsamuelsen/quotes-api/internal/adapters/store"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
	"github.com/jsamuelsen/quotes-api/internal/platform/metrics"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database_driver", cfg.Database.Driver),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Business metrics
	met, err := metrics.New()
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}

	// 6. Open the store and apply migrations
	db, err := store.Open(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("store close error", slog.Any("error", closeErr))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating store: %w", err)
		}
	}

	// 7. Health registry
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(db.HealthChecker()); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 8. Credentials
	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("creating password hasher: %w", err)
	}

	tokens, err := security.NewJWTManager(security.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("creating token manager: %w", err)
	}

	// 9. Application services
	authService := app.NewAuthService(app.AuthServiceConfig{
		Users:   db.Users(),
		Hasher:  hasher,
		Tokens:  tokens,
		Metrics: met,
		Logger:  logger,
	})

	tagService := app.NewTagService(app.TagServiceConfig{
		Tags:    db.Tags(),
		Metrics: met,
		Logger:  logger,
	})

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:  db.Quotes(),
		Tags:    tagService,
		Metrics: met,
		Logger:  logger,
	})

	// 10. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	// 11. HTTP server and router
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		AppConfig:     &cfg.App,
		ServerConfig:  &cfg.Server,
		Tokens:        tokens,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, buildInfo, met.Handler()),
		AuthHandler:   handlers.NewAuthHandler(authService),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
	})

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
