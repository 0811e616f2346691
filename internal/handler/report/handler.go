package report

import (
	"github.com/gin-gonic/gin"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/report"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/national", middleware.RequireRoles(model.RoleAuthorityAdmin), h.National)
}

func (h *Handler) National(c *gin.Context) {
	overview, err := h.svc.NationalOverview(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"report": overview})
}
