package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/service/auth"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the routes that need no session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/request-reset", h.RequestReset)
	rg.POST("/auth/reset-password", h.ConfirmReset)
}

// RegisterRoutes mounts the routes behind the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", h.Profile)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, gin.H{"token": token, "user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	h.svc.Logout(c.Request.Context(), middleware.TokenFrom(c))
	httputil.Message(c, "logged out")
}

func (h *Handler) Profile(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	user, err := h.svc.Profile(c.Request.Context(), p.UserID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, gin.H{"user": user})
}

func (h *Handler) RequestReset(c *gin.Context) {
	var req model.RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	code, err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	payload := gin.H{"message": "if the account exists, a reset code has been sent"}
	if code != "" {
		payload["reset_code"] = code
	}
	httputil.OK(c, payload)
}

func (h *Handler) ConfirmReset(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, errors.Validation(err.Error()))
		return
	}

	if err := h.svc.ConfirmPasswordReset(c.Request.Context(), req.Email, req.ResetCode, req.NewPassword); err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Message(c, "password has been reset")
}
