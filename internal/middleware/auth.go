package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/auth"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/httputil"
)

const (
	principalKey = "principal"
	tokenKey     = "session_token"
)

// Auth validates the bearer token, rejects revoked sessions, and resolves
// the principal for downstream handlers. The user must still exist; a token
// for a deleted account is treated as unauthenticated.
func Auth(jwtSvc auth.JWTService, tokens repository.TokenRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httputil.Error(c, errors.Unauthenticated("missing bearer token"))
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwtSvc.Validate(raw)
		if err != nil {
			httputil.Error(c, errors.Unauthenticated("invalid or expired token"))
			c.Abort()
			return
		}
		if tokens.IsRevoked(c.Request.Context(), raw) {
			httputil.Error(c, errors.Unauthenticated("session has been logged out"))
			c.Abort()
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			httputil.Error(c, errors.Unauthenticated("invalid token claims"))
			c.Abort()
			return
		}
		if _, err := users.Get(c.Request.Context(), principal.UserID); err != nil {
			httputil.Error(c, errors.Unauthenticated("account no longer exists"))
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set(tokenKey, raw)
		c.Next()
	}
}

// RequireRoles aborts unless the principal holds one of the given roles.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			httputil.Error(c, errors.Unauthenticated(""))
			c.Abort()
			return
		}
		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		httputil.Error(c, errors.Unscoped("insufficient role for this operation"))
		c.Abort()
	}
}

// PrincipalFrom returns the authenticated principal, or nil outside the
// protected group.
func PrincipalFrom(c *gin.Context) *model.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*model.Principal)
	return p
}

// TokenFrom returns the raw session token the caller presented.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}
