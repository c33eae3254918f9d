package feedback

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	api.POST("/feedback",
		middleware.RateLimitByIP(0.2, 3),
		middleware.Idempotency(rdb, logger),
		handler.Submit,
	)
}
