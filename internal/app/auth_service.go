package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
	"github.com/jsamuelsen/quotes-api/internal/platform/metrics"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// Messages returned by the auth flows.
const (
	MsgUserExists      = "A user already exists with that username"
	MsgRegistered      = "Registered successfully"
	MsgAccountNotFound = "Account not found."
	MsgInvalidLogin    = "Invalid login."
	MsgLoginSuccessful = "Login successful!"
)

// AuthService registers users and signs them in.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenManager
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// AuthServiceConfig contains configuration for the auth service.
type AuthServiceConfig struct {
	Users   ports.UserRepository
	Hasher  ports.PasswordHasher
	Tokens  ports.TokenManager
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewAuthService creates a new auth service. It panics if a port is nil.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Users == nil || cfg.Hasher == nil || cfg.Tokens == nil {
		panic("app: NewAuthService requires Users, Hasher and Tokens")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		users:   cfg.Users,
		hasher:  cfg.Hasher,
		tokens:  cfg.Tokens,
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "app.AuthService")),
	}
}

// Signup creates an account and issues a session token for it.
func (s *AuthService) Signup(ctx context.Context, username, password string) (result *domain.AuthResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Signup")
	defer func() {
		telemetry.EndSpan(span, err)
		s.metrics.AuthAttempt("signup", outcome(err))
	}()

	_, err = s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.NewValidationError("", MsgUserExists)
	case !domain.IsNotFound(err):
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if domain.IsConflict(err) {
			return nil, domain.NewValidationError("", MsgUserExists)
		}

		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return &domain.AuthResult{
		Message: MsgRegistered,
		User:    user.Public(),
		Token:   token,
	}, nil
}

// Signin checks the credentials and issues a session token. It never writes.
func (s *AuthService) Signin(ctx context.Context, username, password string) (result *domain.AuthResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Signin")
	defer func() {
		telemetry.EndSpan(span, err)
		s.metrics.AuthAttempt("signin", outcome(err))
	}()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("", MsgAccountNotFound)
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("comparing password: %w", err)
	}

	if !ok {
		return nil, domain.NewValidationError("", MsgInvalidLogin)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &domain.AuthResult{
		Message: MsgLoginSuccessful,
		User:    user.Public(),
		Token:   token,
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case domain.IsValidation(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
