// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// RecordRouteHandler defines the interface for record collection handlers.
// All record handlers must implement these methods.
type RecordRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterRecordRoutes registers standard CRUD routes for a record collection.
// This eliminates the need to manually wire up routes for each entity type.
//
// Usage:
//
//	repo, _ := jsonfile.NewRepository(ctx, store, func() *inventory.Item { return &inventory.Item{} })
//	service := inventory.NewService(repo)
//	handler := handlers.NewInventoryHandler(baseHandler, service)
//	RegisterRecordRoutes(api.Group("/inventory"), handler)
func RegisterRecordRoutes(group *gin.RouterGroup, handler RecordRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
