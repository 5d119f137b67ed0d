package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/carehub-api/internal/handler/health"
	promhandler "github.com/jwalitptl/carehub-api/internal/handler/prometheus"
	"github.com/jwalitptl/carehub-api/internal/middleware"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type RouterConfig struct {
	ServiceName    string
	RateLimit      rate.Limit
	RateBurst      int
	RequestTimeout time.Duration
	MaxBodySize    int64
	CORSConfig     middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	health   *health.Handler
	metricsH *promhandler.Handler
	handlers []Handler
}

func NewRouter(
	config RouterConfig,
	log *logger.Logger,
	m *metrics.Metrics,
	metricsH *promhandler.Handler,
	healthH *health.Handler,
	handlers ...Handler,
) *Router {
	engine := gin.New()
	middleware.RegisterValidation()

	sizeLimit := middleware.DefaultSizeLimitConfig()
	if config.MaxBodySize > 0 {
		sizeLimit.MaxBodySize = config.MaxBodySize
	}
	timeout := middleware.DefaultTimeoutConfig()
	if config.RequestTimeout > 0 {
		timeout.Duration = config.RequestTimeout
	}

	engine.Use(
		otelgin.Middleware(config.ServiceName),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Metrics(m),
		middleware.ErrorHandler(log),
		middleware.CORS(config.CORSConfig),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
	)

	if config.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	engine.Use(
		middleware.SizeLimit(sizeLimit),
		middleware.Timeout(timeout),
	)

	return &Router{
		engine:   engine,
		health:   healthH,
		metricsH: metricsH,
		handlers: handlers,
	}
}

// Setup mounts the operational endpoints at the root and the resource
// routes under /api.
func (r *Router) Setup() {
	r.health.RegisterRoutes(r.engine)
	if r.metricsH != nil {
		r.engine.GET("/metrics", r.metricsH.Handler())
	}

	api := r.engine.Group("/api")
	api.Use(middleware.Cache(middleware.DefaultCacheConfig()))
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
