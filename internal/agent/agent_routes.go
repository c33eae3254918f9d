package agent

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the agent endpoints on a group that already runs
// AuthMiddleware.
func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	profile := api.Group("/agent/profile", middleware.SelfOrAdmin("userId"))
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", middleware.RateLimitByUser(0.5, 2), handler.UpdateProfile)
		profile.POST("/photo", middleware.RateLimitByUser(0.2, 1), handler.UploadPhoto)
	}

	agents := api.Group("/agents")
	{
		agents.GET("", handler.List)
		agents.GET("/:id/performance", handler.GetPerformance)
	}
}

func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "agent", "write")

	admin.POST("/agents", middleware.RateLimitByUser(0.5, 2), write, handler.Create)
	admin.PUT("/agents/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Update)
	admin.DELETE("/agents/:id", middleware.RateLimitByUser(0.2, 1), write, handler.Delete)

	admin.POST("/agents/:id/performance", middleware.RateLimitByUser(0.5, 2), write, handler.CreatePerformance)
	admin.PUT("/performance/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdatePerformance)
	admin.DELETE("/performance/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeletePerformance)
}
