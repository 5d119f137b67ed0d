package provider

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/internal/handler"
	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/service/provider"
	"github.com/jwalitptl/carehub-api/pkg/httputil"
)

type Handler struct {
	service provider.ProviderService
}

func NewHandler(service provider.ProviderService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.GET("", h.ListProviders)
		providers.GET("/:id/schedule", h.GetSchedule)
	}
}

func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, providers)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	var filters model.AppointmentFilters
	if !handler.BindQuery(c, &filters) {
		return
	}

	appts, err := h.service.GetSchedule(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, appts)
}
