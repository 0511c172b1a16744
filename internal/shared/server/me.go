package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

type meResponse struct {
	UserID    string        `json:"userId"`
	IsGuest   bool          `json:"isGuest"`
	Email     string        `json:"email,omitempty"`
	Name      string        `json:"name,omitempty"`
	Role      string        `json:"role,omitempty"`
	ParseRate parseRateInfo `json:"parseRateLimit"`
}

type parseRateInfo struct {
	PerSecond float64 `json:"perSecond"`
	Burst     int     `json:"burst"`
}

// registerMeRoutes attaches /me, which reports the caller identity and
// the parse budget shared by upload and pasted-text parsing.
func registerMeRoutes(rg *gin.RouterGroup, cfg config.Config) {
	rate := parseRateInfo{PerSecond: cfg.ParseRateLimitRPS, Burst: cfg.ParseRateLimitBurst}
	rg.GET("/me", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "missing or invalid token", nil)
			return
		}
		respond.JSON(c, http.StatusOK, meResponse{
			UserID:    userID,
			IsGuest:   c.GetBool("isGuest"),
			Email:     middleware.UserEmailFromContext(c),
			Name:      middleware.UserNameFromContext(c),
			Role:      middleware.UserRoleFromContext(c),
			ParseRate: rate,
		})
	})
}
