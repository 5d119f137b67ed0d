package prometheus

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes one registry. Scrapes are counted on the same registry
// under promhttp_metric_handler_requests_total, and a collector that fails
// does not hide the others.
type Handler struct {
	registry *prometheus.Registry
}

func New(registry *prometheus.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) Handler() gin.HandlerFunc {
	opts := promhttp.HandlerOpts{
		Registry:          h.registry,
		ErrorHandling:     promhttp.ContinueOnError,
		EnableOpenMetrics: true,
	}
	return gin.WrapH(promhttp.InstrumentMetricHandler(h.registry, promhttp.HandlerFor(h.registry, opts)))
}
