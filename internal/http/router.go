package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/claims-copilot/backend/internal/config"
	"github.com/claims-copilot/backend/internal/http/handlers"
	"github.com/claims-copilot/backend/internal/http/middleware"
	"github.com/claims-copilot/backend/internal/registry"
	"github.com/claims-copilot/backend/internal/session"
	"github.com/claims-copilot/backend/internal/simulate"
	"github.com/claims-copilot/backend/internal/store"

	_ "github.com/claims-copilot/backend/docs"
)

func Router(cfg config.Config, st store.CaseStore, sessions *session.Registry, reg *registry.Registry, runner *simulate.Runner, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     st,
		Sessions:  sessions,
		Registry:  reg,
		Runner:    runner,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.POST("/session", h.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireSession(sessions))
	{
		authed.GET("/session", h.CurrentSession)
		authed.DELETE("/session", h.Logout)
		authed.GET("/navigation", h.Navigation)

		authed.GET("/cases", h.CasesList)
		authed.GET("/cases/active", h.ActiveCase)
		authed.PUT("/cases/active", h.SetActiveCase)
		authed.GET("/cases/:id", h.CaseDetails)
		authed.GET("/cases/:id/knowledge", h.CaseKnowledge)

		authed.GET("/documents", h.DocumentsList)
		authed.GET("/policy-changes", h.PolicyChangesList)

		authed.POST("/simulations", h.SimulationRun)
	}

	analytics := authed.Group("")
	analytics.Use(middleware.RequireAccess("/analytics"))
	{
		analytics.GET("/analytics", h.AnalyticsView)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
