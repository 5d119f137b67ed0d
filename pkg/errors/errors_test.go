package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Patient", nil).StatusCode())
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Transient("flaky").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(stderrors.New("x")).StatusCode())
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Appointment", stderrors.New("record not found"))
	assert.Equal(t, "Appointment not found", err.Message)
	assert.Equal(t, "Appointment not found: record not found", err.Error())
}

func TestAsThroughWrapping(t *testing.T) {
	cause := stderrors.New("root")
	wrapped := fmt.Errorf("service: %w", NotFound("Notification", cause))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)
	assert.True(t, IsCode(wrapped, ErrNotFound))
	assert.False(t, IsCode(wrapped, ErrTransient))
	assert.ErrorIs(t, wrapped, cause)

	_, ok = As(cause)
	assert.False(t, ok)
}
