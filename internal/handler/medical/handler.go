package medical

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/medical"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *medical.Service
}

func NewHandler(svc *medical.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/records", middleware.RequireRoles(model.RoleDoctor), h.AddRecord)
	rg.GET("/records/client", h.ListRecords)
	rg.GET("/users/clients", middleware.RequireRoles(model.RoleDoctor), h.ListClients)
}

func (h *Handler) AddRecord(c *gin.Context) {
	var req model.AddMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	record, err := h.svc.AddRecord(c.Request.Context(), middleware.PrincipalFrom(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"record": record, "record_id": record.ID})
}

// ListRecords accepts an optional client_id query parameter; clients may
// only name themselves, doctors narrow their own records with it.
func (h *Handler) ListRecords(c *gin.Context) {
	var clientID uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		var err error
		if clientID, err = uuid.Parse(raw); err != nil {
			httputil.Error(c, errors.Validation("invalid client id"))
			return
		}
	}

	records, err := h.svc.ClientRecords(c.Request.Context(), middleware.PrincipalFrom(c), clientID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"records": records})
}

// ListClients optionally narrows to clients seen by one doctor via the
// doctor_id query parameter.
func (h *Handler) ListClients(c *gin.Context) {
	var doctorID uuid.UUID
	if raw := c.Query("doctor_id"); raw != "" {
		var err error
		if doctorID, err = uuid.Parse(raw); err != nil {
			httputil.Error(c, errors.Validation("invalid doctor id"))
			return
		}
	}
	clients, err := h.svc.ListClients(c.Request.Context(), doctorID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"clients": clients})
}
