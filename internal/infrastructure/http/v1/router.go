// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"smartinventory/internal/domain/auth"
	"smartinventory/internal/domain/inventory"
	"smartinventory/internal/domain/reports"
	"smartinventory/internal/infrastructure/http/v1/handlers"
	"smartinventory/internal/infrastructure/http/v1/middleware"
	"smartinventory/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Engine is the inventory engine (items + movement ledger)
	Engine *inventory.Service

	// Reports derives the dashboard aggregates
	Reports *reports.Service

	// AuthService for login endpoints
	AuthService *auth.Service

	// TokenValidator for session token validation
	TokenValidator middleware.TokenValidator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Engine)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	inventoryHandler := handlers.NewInventoryHandler(base, cfg.Engine)
	movementHandler := handlers.NewMovementHandler(base, cfg.Engine)
	dashboardHandler := handlers.NewDashboardHandler(base, cfg.Reports)
	reportsHandler := handlers.NewReportsHandler(base, cfg.Engine)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes (login is the only unauthenticated operation)
		apiV1.POST("/auth/login", authHandler.Login)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.TokenValidator))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/items", inventoryHandler.List)
			protected.POST("/items", inventoryHandler.Create)
			protected.GET("/items/:id", inventoryHandler.Get)
			protected.PATCH("/items/:id", inventoryHandler.Update)

			protected.GET("/movements", movementHandler.List)
			protected.POST("/movements", movementHandler.Create)

			protected.GET("/dashboard/kpi", dashboardHandler.KPI)
			protected.GET("/dashboard/charts", dashboardHandler.Charts)

			protected.GET("/reports/inventory/export", reportsHandler.ExportInventory)
			protected.GET("/reports/movements/export", reportsHandler.ExportMovements)
		}
	}

	return router
}
