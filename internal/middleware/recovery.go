package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/pkg/httputil"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// Recovery turns a handler panic into a 500 {"error"} body. http.ErrAbortHandler
// is re-raised so net/http can drop the connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	log = log.With("recovery")
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log.Error(fmt.Errorf("panic: %v", rec), "Request panic recovered",
				"stack", string(debug.Stack()),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", logger.RequestID(c.Request.Context()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.ErrorBody{
				Error: "Internal server error",
			})
		}()
		c.Next()
	}
}
