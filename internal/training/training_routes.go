package training

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/quality-training", handler.List)
	api.GET("/quality-training/:slug", handler.GetBySlug)
}

// Writes are open to qa as well as admin; see rbac.DefaultPermissions.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "training", "write")

	admin.POST("/quality-training", middleware.RateLimitByUser(0.5, 2), write, handler.Create)
	admin.PUT("/quality-training/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Update)
	admin.DELETE("/quality-training/:id", middleware.RateLimitByUser(0.2, 1), write, handler.Delete)
}
