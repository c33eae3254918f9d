package catalog

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public resolver routes on api. The product path
// lives under /products because gin cannot hang both /:subcategory and a
// catch-all off the same /brands/:brand/:category node.
func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	brands := api.Group("/brands")
	{
		brands.GET("", middleware.RateLimitByIP(10, 30), handler.ListBrands)
		brands.GET("/by-name/:brand", handler.GetBrand)
		brands.GET("/:brand/:category", handler.GetCategory)
		brands.GET("/:brand/:category/:subcategory", handler.GetSubcategory)
	}

	api.GET("/products/:brand/:category/*tail", handler.GetProduct)
}

// RegisterAdminRoutes expects admin to already carry AuthMiddleware.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	write := middleware.RBACAuthorize(rbacService, "catalog", "write")

	admin.POST("/brands", middleware.RateLimitByUser(0.5, 2), write, handler.CreateBrand)
	admin.PUT("/brands/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateBrand)
	admin.DELETE("/brands/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteBrand)

	admin.POST("/categories", middleware.RateLimitByUser(0.5, 2), write, handler.CreateCategory)
	admin.PUT("/categories/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateCategory)
	admin.DELETE("/categories/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteCategory)

	admin.POST("/subcategories", middleware.RateLimitByUser(0.5, 2), write, handler.CreateSubcategory)
	admin.PUT("/subcategories/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateSubcategory)
	admin.DELETE("/subcategories/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteSubcategory)

	admin.POST("/products", middleware.RateLimitByUser(0.5, 2), write, handler.CreateProduct)
	admin.PUT("/products/:id", middleware.RateLimitByUser(0.5, 2), write, handler.UpdateProduct)
	admin.DELETE("/products/:id", middleware.RateLimitByUser(0.2, 1), write, handler.DeleteProduct)
}
