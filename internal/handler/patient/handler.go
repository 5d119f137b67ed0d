package patient

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/carehub-api/internal/handler"
	"github.com/jwalitptl/carehub-api/internal/model"
	"github.com/jwalitptl/carehub-api/internal/service/patient"
	"github.com/jwalitptl/carehub-api/pkg/httputil"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)

		patients.GET("/:id/appointments", h.ListAppointments)
		patients.GET("/:id/vitals", h.ListVitals)
		patients.GET("/:id/notes", h.ListNotes)
		patients.POST("/:id/notes", h.CreateNote)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	var filters model.PatientFilters
	if !handler.BindQuery(c, &filters) {
		return
	}

	page, err := h.service.ListPatients(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, page)
}

func (h *Handler) GetPatient(c *gin.Context) {
	p, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	patch, ok := handler.ReadJSONBody(c)
	if !ok {
		return
	}

	p, err := h.service.UpdatePatient(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appts, err := h.service.ListAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, appts)
}

func (h *Handler) ListVitals(c *gin.Context) {
	vitals, err := h.service.ListVitals(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, vitals)
}

func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.service.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithSuccess(c, notes)
}

func (h *Handler) CreateNote(c *gin.Context) {
	var req model.CreateNoteRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httputil.RespondWithCreated(c, note)
}
