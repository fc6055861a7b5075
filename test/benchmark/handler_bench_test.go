package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apphttp "github.com/jsamuelsen/quotes-api/internal/adapters/http"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/security"
	"github.com/jsamuelsen/quotes-api/internal/adapters/store"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/app/session"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo, nil)
}

func newStore(b *testing.B) *store.Store {
	b.Helper()

	s, err := store.Open(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, discardLogger())
	if err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() { _ = s.Close() })

	if err := s.Migrate(context.Background()); err != nil {
		b.Fatal(err)
	}

	return s
}

func newTokens(b *testing.B) *security.JWTManager {
	b.Helper()

	tokens, err := security.NewJWTManager(security.JWTConfig{
		Secret: "benchmark-secret-0123456789abcdef",
		TTL:    time.Hour,
	})
	if err != nil {
		b.Fatal(err)
	}

	return tokens
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_Database measures readiness with a live store ping.
func BenchmarkReadinessHandler_Database(b *testing.B) {
	s := newStore(b)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(s.HealthChecker()); err != nil {
		b.Fatal(err)
	}

	handler := handlers.NewHealthHandler(registry, handlers.BuildInfo{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkTokenVerify measures session token verification, which runs on
// every quote request.
func BenchmarkTokenVerify(b *testing.B) {
	tokens := newTokens(b)

	token, err := tokens.Generate(42)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := tokens.Verify(token); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpsertTags measures the find-or-create path with a mix of
// existing and new tag names.
func BenchmarkUpsertTags(b *testing.B) {
	s := newStore(b)
	svc := app.NewTagService(app.TagServiceConfig{Tags: s.Tags(), Logger: discardLogger()})
	ctx := context.Background()

	if _, err := svc.UpsertTags(ctx, []string{"shared-a", "shared-b"}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		names := []string{"shared-a", "shared-b", "new-" + strconv.Itoa(i)}
		if _, err := svc.UpsertTags(ctx, names); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkListQuotes_FullChain measures GET /quotes through every middleware.
func BenchmarkListQuotes_FullChain(b *testing.B) {
	s := newStore(b)
	tokens := newTokens(b)
	ctx := context.Background()

	user, err := s.Users().Create(ctx, "bench", "hash")
	if err != nil {
		b.Fatal(err)
	}

	quoteSvc := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes: s.Quotes(),
		Tags:   app.NewTagService(app.TagServiceConfig{Tags: s.Tags(), Logger: discardLogger()}),
		Logger: discardLogger(),
	})

	sessCtx := session.WithSession(ctx, session.Session{UserID: user.ID})
	for i := range 10 {
		if _, err := quoteSvc.Create(sessCtx, "quote "+strconv.Itoa(i), []string{"t" + strconv.Itoa(i%3)}); err != nil {
			b.Fatal(err)
		}
	}

	authSvc := app.NewAuthService(app.AuthServiceConfig{
		Users: s.Users(), Hasher: mustHasher(b), Tokens: tokens, Logger: discardLogger(),
	})

	router := gin.New()
	apphttp.SetupRouter(router, apphttp.RouterConfig{
		AppConfig:     &config.AppConfig{Name: "quotes-api"},
		ServerConfig:  &config.ServerConfig{RequestTimeout: 5 * time.Second},
		Tokens:        tokens,
		HealthHandler: setupHealthHandler(),
		AuthHandler:   handlers.NewAuthHandler(authSvc),
		QuoteHandler:  handlers.NewQuoteHandler(quoteSvc),
	})

	token, err := tokens.Generate(user.ID)
	if err != nil {
		b.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/quotes", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func mustHasher(b *testing.B) *security.BcryptHasher {
	b.Helper()

	h, err := security.NewBcryptHasher(4)
	if err != nil {
		b.Fatal(err)
	}

	return h
}
