package announcement

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	announcements := api.Group("/announcements")
	{
		announcements.GET("", handler.List)
		announcements.GET("/:id", handler.GetByID)
	}
}

func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "announcement", "write")

	admin.POST("/announcements", middleware.RateLimitByUser(0.5, 2), write, handler.Create)
	admin.PUT("/announcements/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Update)
	admin.DELETE("/announcements/:id", middleware.RateLimitByUser(0.2, 1), write, handler.Delete)
}
