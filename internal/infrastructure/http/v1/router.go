// Package v1 provides HTTP API version 1.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aktiva/internal/domain/asset"
	"aktiva/internal/domain/inventory"
	"aktiva/internal/domain/maintenance"
	"aktiva/internal/infrastructure/http/v1/handlers"
	"aktiva/internal/infrastructure/http/v1/middleware"
	"aktiva/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Long-lived services, one per entity type (sole writers to their documents)
	AssetService       *asset.Service
	MaintenanceService *maintenance.Service
	InventoryService   *inventory.Service

	// DataDir is where the backing documents live (for health checks)
	DataDir string
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
	router.Use(middleware.CORS())

	// Route index
	router.GET("/", index)

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.DataDir)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()
	maintenanceHandler := handlers.NewMaintenanceHandler(baseHandler, cfg.MaintenanceService)

	// API v1
	api := router.Group("/api/v1")
	{
		// --- ASSETS ---
		{
			handler := handlers.NewAssetHandler(baseHandler, cfg.AssetService)
			group := api.Group("/assets")
			RegisterRecordRoutes(group, handler)
			group.POST("/revalue", handler.Revalue)
			group.GET("/:id/maintenance", maintenanceHandler.ListForAsset)
		}

		// --- MAINTENANCE ---
		RegisterRecordRoutes(api.Group("/maintenance"), maintenanceHandler)

		// --- INVENTORY ---
		{
			handler := handlers.NewInventoryHandler(baseHandler, cfg.InventoryService)
			RegisterRecordRoutes(api.Group("/inventory"), handler)
		}
	}

	return router
}

// index lists the available routes for API discovery.
func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the aktiva asset tracking API",
		"available_routes": gin.H{
			"GET /api/v1/assets":                 "List all assets",
			"POST /api/v1/assets":                "Add a new asset",
			"GET /api/v1/assets/:id":             "Get an asset by ID",
			"PUT /api/v1/assets/:id":             "Update an asset",
			"DELETE /api/v1/assets/:id":          "Delete an asset",
			"POST /api/v1/assets/revalue":        "Revalue all assets as of a date",
			"GET /api/v1/assets/:id/maintenance": "List maintenance records for an asset",
			"GET /api/v1/maintenance":            "List all maintenance records",
			"POST /api/v1/maintenance":           "Add a maintenance record",
			"GET /api/v1/inventory":              "List all inventory items",
			"POST /api/v1/inventory":             "Add an inventory item",
			"GET /api/v1/inventory/:id":          "Get an inventory item by ID",
		},
	})
}
