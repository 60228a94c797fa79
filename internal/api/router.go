// Package api wires the HTTP surface: router, middleware and handlers.
package api

import (
	"time"

	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/api/middleware"
	"complaintdesk/backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Router builds the gin engine with all routes attached. The submission
// and login endpoints are public; everything staff-facing sits behind
// the auth middleware.
func Router(cfg config.Config, h *handler.Handler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/complaints", h.CreateComplaint)
		api.POST("/customers", h.CreateCustomer)
	}

	staff := api.Group("")
	staff.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		staff.GET("/complaints", h.ListComplaints)
		staff.PATCH("/complaints/:id", h.UpdateComplaint)
		staff.GET("/customers", h.ListCustomers)
		staff.GET("/dashboard", h.Dashboard)
	}

	return r
}
