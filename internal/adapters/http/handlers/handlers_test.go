package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/app/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureErrors records the error a handler attaches so tests can inspect it
// without the full error middleware.
func captureErrors(dst *error) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			*dst = c.Errors.Last().Err
		}
	}
}

// withSession installs a session for userID, standing in for RequireSession.
func withSession(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := session.WithSession(c.Request.Context(), session.Session{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	return req
}
