package app

import (
	"database/sql"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/agent"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/announcement"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/catalog"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/knowledge"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/rbac"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/connection"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/sop"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
	cache  *cache.Cache
}

func postgresOptions(cfg config.DatabaseConfig) connection.PostgresOptions {
	return connection.PostgresOptions{
		Host:       cfg.Host,
		User:       cfg.User,
		Password:   cfg.Password,
		Name:       cfg.Name,
		Port:       cfg.Port,
		SSLMode:    cfg.SSLMode,
		MaxRetries: cfg.MaxRetries,
	}
}

// models lists every table the API owns, for AutoMigrate.
func models() []any {
	var all []any
	all = append(all, catalog.Models()...)
	all = append(all, sop.Models()...)
	all = append(all, knowledge.Models()...)
	all = append(all, training.Models()...)
	all = append(all, agent.Models()...)
	all = append(all, &announcement.Announcement{}, &rbac.RolePermission{}, &kafka.OutboxRecord{})
	return all
}

func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(postgresOptions(cfg.DB), logger)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}

	c := cache.New(rdb, logger)
	if err := gormDB.Use(cache.NewInvalidationPlugin(c, logger)); err != nil {
		return err
	}
	if err := gormDB.AutoMigrate(models()...); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(),
	)

	// 2. Register Modules & Routes
	return registerModules(router, cfg, infrastructure{
		gormDB: gormDB,
		sqlDB:  sqlDB,
		rdb:    rdb,
		cache:  c,
	})
}
