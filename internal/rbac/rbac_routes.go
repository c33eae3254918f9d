package rbac

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry AuthMiddleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", handler.Enforce)

		group.GET("/permissions", middleware.RBACAuthorize(service, "rbac", "read"), handler.ListPermissions)
		group.POST("/permissions", middleware.RBACAuthorize(service, "rbac", "write"), handler.GrantPermission)
		group.DELETE("/permissions/:id", middleware.RBACAuthorize(service, "rbac", "write"), handler.RevokePermission)
	}
}
