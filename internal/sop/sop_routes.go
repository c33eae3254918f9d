package sop

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	sop := api.Group("/sop")
	{
		sop.GET("/kategoris", handler.ListCategories)
		sop.GET("/:kategori", handler.GetCategory)
		sop.GET("/:kategori/:sop", handler.GetSOP)
		sop.GET("/:kategori/:sop/:variant", handler.GetVariant)
	}
}

func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "sop", "write")

	admin.POST("/sop-categories", middleware.RateLimitByUser(0.5, 2), write, handler.CreateCategory)
	admin.PUT("/sop-categories/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateCategory)
	admin.DELETE("/sop-categories/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteCategory)

	admin.POST("/sops", middleware.RateLimitByUser(0.5, 2), write, handler.CreateSOP)
	admin.PUT("/sops/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateSOP)
	admin.DELETE("/sops/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteSOP)

	admin.POST("/sop-variants", middleware.RateLimitByUser(0.5, 2), write, handler.CreateVariant)
	admin.PUT("/sop-variants/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateVariant)
	admin.DELETE("/sop-variants/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteVariant)
}
