package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apperrors "github.com/jwalitptl/carehub-api/pkg/errors"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRendersAppErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.Nop()))
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperrors.NotFound("Patient", nil)) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("secret detail")) })
	r.GET("/slow", func(c *gin.Context) { _ = c.Error(context.DeadlineExceeded) })

	w := serve(r, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Patient not found"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/slow", "")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(HeaderXRequestID))
}

func TestRecoveryReraisesAbortHandler(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.Nop()))
	r.GET("/abort", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(r, http.MethodGet, "/abort", "")
	})
}

func TestRequestIDReplacesUnsafeHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {})

	for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(HeaderXRequestID)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 36)
	}
}

func TestSecurityHeadersSkipEmptyValues(t *testing.T) {
	r := gin.New()
	cfg := DefaultSecurityConfig()
	cfg.PermissionsPolicy = ""
	r.Use(SecurityHeaders(cfg))
	r.GET("/", func(c *gin.Context) {})

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	_, ok := w.Header()["Permissions-Policy"]
	assert.False(t, ok)
}

func TestRequestIDPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = logger.RequestID(c.Request.Context()) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(HeaderXRequestID))
	assert.Equal(t, "abc", seen)
}

func TestRateLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: 2})
	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	}
	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	other := httptest.NewRecorder()
	r.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestCacheHeaders(t *testing.T) {
	r := gin.New()
	r.Use(Cache(DefaultCacheConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, "private, no-store", serve(r, http.MethodGet, "/", "").Header().Get("Cache-Control"))
	assert.Equal(t, "no-store", serve(r, http.MethodPost, "/", "").Header().Get("Cache-Control"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestSizeLimit(t *testing.T) {
	cfg := DefaultSizeLimitConfig()
	cfg.MaxBodySize = 8
	r := gin.New()
	r.Use(SizeLimit(cfg))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodPost, "/", `{"a":"0123456789"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "body size exceeds 8 bytes")

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/", `{}`).Code)
}

func TestTimeoutBoundsContext(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.Nop()), Timeout(TimeoutConfig{Duration: 10 * time.Millisecond}))
	r.GET("/", func(c *gin.Context) {
		<-c.Request.Context().Done()
		_ = c.Error(c.Request.Context().Err())
	})

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestTimeoutAttachesDeadlineWhenHandlerIsSilent(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.Nop()), Timeout(TimeoutConfig{Duration: 10 * time.Millisecond}))
	r.GET("/", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"error":"Request timed out"}`, w.Body.String())
}

type pageQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

func TestValidationMessageUsesQueryNames(t *testing.T) {
	RegisterValidation()
	r := gin.New()
	var msg string
	var ok bool
	r.GET("/", func(c *gin.Context) {
		var q pageQuery
		err := c.ShouldBindQuery(&q)
		require.Error(t, err)
		msg, ok = DefaultValidationConfig().ValidationMessage(err)
	})

	serve(r, http.MethodGet, "/?sortOrder=sideways", "")
	assert.True(t, ok)
	assert.Equal(t, "sortOrder must be one of asc desc", msg)

	_, ok = DefaultValidationConfig().ValidationMessage(errors.New("plain"))
	assert.False(t, ok)
}
