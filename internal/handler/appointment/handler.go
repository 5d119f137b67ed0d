package appointment

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/internal/handler"
	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/service/appointment"
	"github.com/jwalitptl/carehub-api/pkg/httputil"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/conflicts", h.CheckConflicts)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	var filters model.AppointmentFilters
	if !handler.BindQuery(c, &filters) {
		return
	}

	appts, err := h.service.ListAppointments(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, appts)
}

func (h *Handler) CheckConflicts(c *gin.Context) {
	var q model.ConflictQuery
	if !handler.BindQuery(c, &q) {
		return
	}

	res, err := h.service.CheckConflicts(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, res)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	appt, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithCreated(c, appt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	patch, ok := handler.ReadJSONBody(c)
	if !ok {
		return
	}

	appt, err := h.service.UpdateAppointment(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, appt)
}

// CancelAppointment backs DELETE; the record stays with status cancelled.
func (h *Handler) CancelAppointment(c *gin.Context) {
	if _, err := h.service.CancelAppointment(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, model.SuccessResponse{Success: true})
}
