package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Common regex patterns for sensitive data.
var (
	// JWT pattern: three base64 segments separated by dots
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	// Bearer token pattern
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// Basic auth pattern
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// DefaultRedactOptions returns the masq options for secret redaction:
// credentials, session tokens, password hashes and the token signing secret.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		// Common sensitive field names
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("apikey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("accessToken"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("refreshToken"),
		masq.WithFieldName("refresh_token"),
		masq.WithFieldName("credential"),
		masq.WithFieldName("credentials"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("bearer"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("session"),
		masq.WithFieldName("privateKey"),
		masq.WithFieldName("private_key"),
		masq.WithFieldName("secretKey"),
		masq.WithFieldName("secret_key"),
		masq.WithFieldName("PasswordHash"),
		masq.WithFieldName("password_hash"),
		masq.WithFieldName("JWTSecret"),
		masq.WithFieldName("jwt_secret"),

		// Field name prefixes for sensitive data
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		// Regex patterns for sensitive values
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data. Uses DefaultRedactOptions which can be
// extended for project-specific needs.
//
// Usage:
//
//	opts := &slog.HandlerOptions{
//	    ReplaceAttr: logging.NewReplaceAttr(),
//	}
//	handler := slog.NewJSONHandler(os.Stdout, opts)
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}

// redactingHandler applies a ReplaceAttr function for handlers that do not
// accept slog.HandlerOptions, such as the pretty terminal handler.
type redactingHandler struct {
	next        slog.Handler
	replaceAttr func(groups []string, a slog.Attr) slog.Attr
	groups      []string
}

func newRedactingHandler(next slog.Handler, replaceAttr func([]string, slog.Attr) slog.Attr) *redactingHandler {
	return &redactingHandler{next: next, replaceAttr: replaceAttr}
}

func (h *redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactingHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replaceAttr(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

func (h *redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replaceAttr(h.groups, a)
	}

	return &redactingHandler{next: h.next.WithAttrs(redacted), replaceAttr: h.replaceAttr, groups: h.groups}
}

func (h *redactingHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string{}, h.groups...), name)

	return &redactingHandler{next: h.next.WithGroup(name), replaceAttr: h.replaceAttr, groups: groups}
}
