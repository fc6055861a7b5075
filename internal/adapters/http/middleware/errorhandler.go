package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
)

// ErrorMapper turns an error into a status code and response body.
type ErrorMapper func(error) (int, *dto.ErrorResponse)

// ErrorHandler returns middleware that renders the last error attached to
// the gin context with c.Error. Handlers and middleware abort and attach
// typed errors instead of writing error responses themselves.
//
// Server errors are logged with their cause; callers only see the generic
// message produced by mapErr.
func ErrorHandler(mapErr ErrorMapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, resp := mapErr(err)

		if traceID := dto.GetTraceID(c); traceID != "" {
			resp.TraceID = traceID
		}

		logger := logging.FromContext(c.Request.Context())

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("error", err.Error()),
				slog.Int("status", status),
				slog.String("trace_id", resp.TraceID),
			)
		} else {
			logger.Debug("request rejected",
				slog.String("error", err.Error()),
				slog.Int("status", status),
			)
		}

		c.AbortWithStatusJSON(status, resp)
	}
}
