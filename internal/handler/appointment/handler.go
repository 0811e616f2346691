package appointment

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/appointment"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.Create)
	rg.GET("/appointments/mine", h.Mine)
	rg.GET("/appointments/facility", h.ForFacility)
	rg.POST("/appointments/status", middleware.RequireRoles(model.RoleDoctor), h.UpdateStatus)
	rg.GET("/users/doctors", h.ListDoctors)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	a, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"appointment": a, "appointment_id": a.ID})
}

func (h *Handler) Mine(c *gin.Context) {
	appointments, err := h.svc.Mine(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"appointments": appointments})
}

// ForFacility accepts an optional facility_id query parameter; scoping
// decides whether the caller may use it.
func (h *Handler) ForFacility(c *gin.Context) {
	var facilityID uuid.UUID
	if raw := c.Query("facility_id"); raw != "" {
		var err error
		if facilityID, err = uuid.Parse(raw); err != nil {
			httputil.Error(c, errors.Validation("invalid facility id"))
			return
		}
	}

	appointments, err := h.svc.ForFacility(c.Request.Context(), middleware.PrincipalFrom(c), facilityID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"appointments": appointments})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	id, _ := uuid.Parse(req.AppointmentID)
	err := h.svc.UpdateStatus(c.Request.Context(), middleware.PrincipalFrom(c), id, model.AppointmentStatus(req.Status))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Message(c, "appointment status updated")
}

func (h *Handler) ListDoctors(c *gin.Context) {
	var facilityID uuid.UUID
	if raw := c.Query("facility_id"); raw != "" {
		var err error
		if facilityID, err = uuid.Parse(raw); err != nil {
			httputil.Error(c, errors.Validation("invalid facility id"))
			return
		}
	}

	doctors, err := h.svc.ListDoctors(c.Request.Context(), facilityID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"doctors": doctors})
}
