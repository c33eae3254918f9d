package auth

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, verifier middleware.SessionVerifier) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/session", middleware.RateLimitByIP(0.5, 5), handler.Session)
		auth.GET("/me", middleware.AuthMiddleware(verifier), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
