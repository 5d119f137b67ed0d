// Package handler holds helpers shared by the per-resource gin handlers.
// Handlers report failures with c.Error and let middleware.ErrorHandler
// render them.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/internal/middleware"
	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
)

var validation = middleware.DefaultValidationConfig()

// BindQuery binds and validates query parameters into dst. On failure it
// records a 400 and returns false.
func BindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		msg, ok := validation.ValidationMessage(err)
		if !ok {
			msg = "Invalid query parameters"
		}
		_ = c.Error(apperrors.BadRequest(msg, err))
		return false
	}
	return true
}

// ReadJSONBody returns the raw request body, treating an empty body as {}.
// Malformed JSON records a 400 and returns false.
func ReadJSONBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperrors.BadRequest("Request size exceeds limit", err))
		} else {
			_ = c.Error(apperrors.BadRequest("Invalid request body", err))
		}
		return nil, false
	}
	if len(raw) == 0 {
		return []byte("{}"), true
	}
	if !json.Valid(raw) {
		_ = c.Error(apperrors.BadRequest("Invalid request body", nil))
		return nil, false
	}
	return raw, true
}

// BindJSON decodes the body into dst with the same empty-body leniency.
func BindJSON(c *gin.Context, dst interface{}) bool {
	raw, ok := ReadJSONBody(c)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		_ = c.Error(apperrors.BadRequest("Invalid request body", err))
		return false
	}
	return true
}
