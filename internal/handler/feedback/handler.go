package feedback

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/feedback"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *feedback.Service
}

func NewHandler(svc *feedback.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", middleware.RequireRoles(model.RoleClient), h.Submit)
	rg.GET("/feedback/facility", middleware.RequireRoles(model.RoleFacilityAdmin, model.RoleAuthorityAdmin), h.ForFacility)
	rg.GET("/feedback/national", middleware.RequireRoles(model.RoleAuthorityAdmin), h.National)
}

func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	fb, err := h.svc.Submit(c.Request.Context(), middleware.PrincipalFrom(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"feedback": fb})
}

func (h *Handler) ForFacility(c *gin.Context) {
	var facilityID uuid.UUID
	if raw := c.Query("facility_id"); raw != "" {
		var err error
		if facilityID, err = uuid.Parse(raw); err != nil {
			httputil.Error(c, errors.Validation("invalid facility id"))
			return
		}
	}

	entries, err := h.svc.ForFacility(c.Request.Context(), middleware.PrincipalFrom(c), facilityID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"feedback": entries})
}

func (h *Handler) National(c *gin.Context) {
	entries, err := h.svc.National(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"feedback": entries})
}
