package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/pkg/httputil"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// ErrorHandler renders the last error attached with c.Error as
// {"error": message}. Handlers only attach and return.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	zl := log.Zerolog()
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			zl.Error().
				Err(e.Err).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last().Err
		switch {
		case errors.Is(lastErr, context.DeadlineExceeded):
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, httputil.ErrorBody{Error: "Request timed out"})
		case errors.Is(lastErr, context.Canceled):
			// Client went away; nobody reads the body.
			c.AbortWithStatus(499)
		default:
			httputil.RespondWithError(c, lastErr)
		}
	}
}
