// Package router assembles the HTTP facade: middleware chain, public and
// protected route groups, and the operational endpoints.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthnet/admin-api/internal/handler"
	"github.com/healthnet/admin-api/internal/middleware"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/auth"
	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/metrics"
)

// PublicRegistrar mounts routes that need no session.
type PublicRegistrar interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRegistrar mounts routes behind the auth middleware.
type ProtectedRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

type Config struct {
	Mode string

	LatencyEnabled bool
	LatencyMin     time.Duration
	LatencyMax     time.Duration

	RateLimitEnabled bool
	RequestsPerSec   float64
	Burst            int

	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string

	MetricsEnabled bool
	MetricsPath    string
}

type Router struct {
	engine *gin.Engine
}

// New builds the engine. The auth handler registers in both groups; every
// other registrar mounts under the protected group only.
func New(cfg Config, log *logger.Logger, m *metrics.Metrics,
	jwtSvc auth.JWTService, tokens repository.TokenRepository, users repository.UserRepository,
	public []PublicRegistrar, protected []ProtectedRegistrar) *Router {

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.AllowedOrigins, cfg.AllowedMethods, cfg.AllowedHeaders))
	if cfg.MetricsEnabled {
		engine.Use(middleware.Metrics(m))
	}
	if cfg.RateLimitEnabled {
		engine.Use(middleware.RateLimit(cfg.RequestsPerSec, cfg.Burst))
	}

	handler.NewHealthHandler().RegisterRoutes(engine)
	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	api := engine.Group("/api/v1")
	if cfg.LatencyEnabled {
		api.Use(middleware.Latency(cfg.LatencyMin, cfg.LatencyMax))
	}

	for _, h := range public {
		h.RegisterPublicRoutes(api)
	}

	secured := api.Group("")
	secured.Use(middleware.Auth(jwtSvc, tokens, users))
	for _, h := range protected {
		h.RegisterRoutes(secured)
	}

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
