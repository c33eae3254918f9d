package knowledge

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/knowledge", handler.List)
	api.GET("/knowledge/:slug", handler.GetBySlug)
}

func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "knowledge", "write")

	admin.POST("/knowledge", middleware.RateLimitByUser(0.5, 2), write, handler.Create)
	admin.PUT("/knowledge/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Update)
	admin.DELETE("/knowledge/:id", middleware.RateLimitByUser(0.2, 1), write, handler.Delete)
}
