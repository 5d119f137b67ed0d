package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationConfig represents validation configuration
type ValidationConfig struct {
	CustomErrorMessages map[string]string
}

func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		CustomErrorMessages: map[string]string{
			"required": "is required",
			"min":      "is below the minimum",
			"oneof":    "must be one of",
		},
	}
}

var registerOnce sync.Once

// RegisterValidation makes gin's validator report fields by their query or
// JSON name instead of the Go field name. Safe to call more than once.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// ValidationMessage turns a binding error into a single client-facing
// sentence. ok is false for errors that are not validation failures.
func (cfg ValidationConfig) ValidationMessage(err error) (msg string, ok bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		text := cfg.CustomErrorMessages[e.Tag()]
		if text == "" {
			text = "is invalid"
		}
		if e.Param() != "" {
			text = fmt.Sprintf("%s %s", text, e.Param())
		}
		parts = append(parts, fmt.Sprintf("%s %s", e.Field(), text))
	}
	return strings.Join(parts, "; "), true
}
