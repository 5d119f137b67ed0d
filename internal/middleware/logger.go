package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// Logger returns a middleware that logs HTTP requests. Bodies are never
// logged since they carry patient data.
func Logger(log *logger.Logger) gin.HandlerFunc {
	zl := log.Zerolog()
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		evt := zl.Info()
		msg := "Request processed"
		switch {
		case statusCode >= 500:
			evt, msg = zl.Error(), "Server error"
		case statusCode >= 400:
			evt, msg = zl.Warn(), "Client error"
		}

		evt = evt.
			Str("request_id", c.GetString(ContextRequestID)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", statusCode).
			Dur("duration", latency).
			Str("user_agent", c.Request.UserAgent())

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			evt = evt.Str("trace_id", sc.TraceID().String())
		}
		evt.Msg(msg)
	}
}
