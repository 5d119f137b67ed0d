package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/pkg/errors"
)

// ErrorBody is the single error shape every endpoint returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondWithSuccess sends data as the bare JSON body with 200.
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithCreated sends data with 201.
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondWithError renders err as {error: message}. AppErrors keep their
// message and status; anything else becomes an opaque 500.
func RespondWithError(c *gin.Context, err error) {
	statusCode, message := StatusAndMessage(err)
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

func StatusAndMessage(err error) (int, string) {
	if appErr, ok := errors.As(err); ok {
		return appErr.StatusCode(), appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
