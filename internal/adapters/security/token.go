package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, badly signed,
// expired or issued by someone else.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and verifies HS256 session tokens. The subject claim
// carries the user id.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// JWTConfig configures a JWTManager.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Now    func() time.Time // defaults to time.Now
}

// NewJWTManager creates a token manager.
func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &JWTManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    now,
	}, nil
}

// Generate issues a signed token for userID.
func (m *JWTManager) Generate(userID int64) (string, error) {
	now := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks the token and returns the user id it was issued for.
func (m *JWTManager) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return userID, nil
}
