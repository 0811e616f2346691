package supply

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/supply"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *supply.Service
}

func NewHandler(svc *supply.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admins := middleware.RequireRoles(model.RoleFacilityAdmin, model.RoleAuthorityAdmin)
	rg.GET("/supply-requests", admins, h.List)
	rg.POST("/supply-requests", middleware.RequireRoles(model.RoleFacilityAdmin), h.Create)
	rg.POST("/supply-requests/status", middleware.RequireRoles(model.RoleAuthorityAdmin), h.UpdateStatus)

	facilityAdmin := middleware.RequireRoles(model.RoleFacilityAdmin)
	rg.GET("/inventory", facilityAdmin, h.Inventory)
	rg.POST("/inventory", facilityAdmin, h.UpsertInventory)
}

func (h *Handler) List(c *gin.Context) {
	requests, err := h.svc.List(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"requests": requests})
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateSupplyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	request, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"request": request, "request_id": request.ID})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateSupplyRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	id, _ := uuid.Parse(req.RequestID)
	request, err := h.svc.UpdateStatus(c.Request.Context(), middleware.PrincipalFrom(c), id, model.SupplyStatus(req.Status))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"request": request})
}

func (h *Handler) Inventory(c *gin.Context) {
	items, err := h.svc.Inventory(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"inventory": items})
}

func (h *Handler) UpsertInventory(c *gin.Context) {
	var req model.UpsertInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	item, err := h.svc.UpsertInventory(c.Request.Context(), middleware.PrincipalFrom(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"item": item})
}
