package facility

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/facility"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *facility.Service
}

func NewHandler(svc *facility.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/facilities", h.List)
	rg.GET("/facilities/mine", middleware.RequireRoles(model.RoleFacilityAdmin, model.RoleDoctor), h.Mine)
	rg.GET("/facilities/:id", h.Get)

	authority := middleware.RequireRoles(model.RoleAuthorityAdmin)
	rg.POST("/facilities", authority, h.Create)
	rg.PUT("/facilities/:id", authority, h.Update)
	rg.POST("/facilities/assign-doctor", authority, h.AssignDoctor)
}

func (h *Handler) List(c *gin.Context) {
	facilities, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"facilities": facilities})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, errors.Validation("invalid facility id"))
		return
	}

	f, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"facility": f})
}

func (h *Handler) Mine(c *gin.Context) {
	f, err := h.svc.MyFacility(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"facility": f})
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	f, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"facility": f, "facility_id": f.ID})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, errors.Validation("invalid facility id"))
		return
	}
	var req model.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	f, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"facility": f})
}

func (h *Handler) AssignDoctor(c *gin.Context) {
	var req model.AssignDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	facilityID, _ := uuid.Parse(req.FacilityID)
	doctorID, _ := uuid.Parse(req.DoctorID)
	if err := h.svc.AssignDoctor(c.Request.Context(), facilityID, doctorID); err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Message(c, "doctor assigned")
}
