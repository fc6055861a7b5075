package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/app/session"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// Messages returned when a request carries no usable session token.
const (
	MsgAuthorizationRequired = "`Authorization` header is required."
	MsgInvalidAccessToken    = "Invalid access token."
)

const (
	// HeaderAuthorization carries the bearer session token.
	HeaderAuthorization = "Authorization"

	bearerScheme = "bearer"
)

// AuthenticationError reports a missing or unusable session token.
// Message is safe to show to API callers.
type AuthenticationError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return "authentication failed: " + e.Message + ": " + e.Cause.Error()
	}

	return "authentication failed: " + e.Message
}

// Unwrap returns the underlying verification error, if any.
func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// RequireSession returns middleware that authenticates the bearer token and
// stores the caller's session in the request context. Requests without a
// valid token are aborted with an AuthenticationError for the ErrorHandler.
func RequireSession(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(HeaderAuthorization)
		if header == "" {
			abortUnauthenticated(c, &AuthenticationError{Message: MsgAuthorizationRequired})
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			abortUnauthenticated(c, &AuthenticationError{Message: MsgInvalidAccessToken})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			abortUnauthenticated(c, &AuthenticationError{Message: MsgInvalidAccessToken, Cause: err})
			return
		}

		ctx := session.WithSession(c.Request.Context(), session.Session{UserID: userID})
		ctx = logging.WithContext(ctx, logging.FromContext(ctx).With(slog.Int64("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func abortUnauthenticated(c *gin.Context, err *AuthenticationError) {
	_ = c.Error(err)
	c.Abort()
}
