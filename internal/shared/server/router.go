package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/resumes"
	"staffing-backend/internal/services/health"
	"staffing-backend/internal/shared/auth"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

const parseRateLimitGroup = "PARSE"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
	Limiter       *middleware.RateLimiter
	Keys          *auth.Keys
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status, ok := deps.Health.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, status)
			return
		}
		respond.JSON(c, http.StatusOK, status)
	})

	authed := api.Group("")
	authed.Use(
		middleware.Auth(deps.Keys),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				parseRateLimitGroup: {Rate: cfg.ParseRateLimitRPS, Burst: cfg.ParseRateLimitBurst},
			},
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
		}),
	)
	registerMeRoutes(authed, cfg)
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(authed)
	}

	return r
}

// rateLimitGroup puts both parse entry points in one budget; other routes are unlimited.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/resumes", "/api/v1/resumes/parse":
		return parseRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
