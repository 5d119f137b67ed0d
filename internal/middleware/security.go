package middleware

import (
	"github.com/gin-gonic/gin"
)

type SecurityConfig struct {
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
	PermissionsPolicy  string
}

// DefaultSecurityConfig suits a JSON API serving patient records: nothing is
// framed and no browser features are needed.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		FrameOptions:       "DENY",
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "no-referrer",
		PermissionsPolicy:  "camera=(), microphone=(), geolocation=()",
	}
}

// SecurityHeaders sets each non-empty header before the handler runs.
func SecurityHeaders(config SecurityConfig) gin.HandlerFunc {
	headers := make([][2]string, 0, 4)
	for _, h := range [][2]string{
		{"X-Frame-Options", config.FrameOptions},
		{"X-Content-Type-Options", config.ContentTypeOptions},
		{"Referrer-Policy", config.ReferrerPolicy},
		{"Permissions-Policy", config.PermissionsPolicy},
	} {
		if h[1] != "" {
			headers = append(headers, h)
		}
	}

	return func(c *gin.Context) {
		for _, h := range headers {
			c.Header(h[0], h[1])
		}
		c.Next()
	}
}
