package app

import (
	"context"
	"net/http"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/agent"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/announcement"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth/session"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/catalog"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/identity"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/knowledge"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/rbac"
	rbacinfra "github.com/ccparagoncorp/customercare-web-sub001/internal/rbac/infra"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/search"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/sop"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/storage"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, infra infrastructure) error {
	logger := zap.L()
	ctx := context.Background()

	// --- Repositories ---
	agentRepo := agent.NewRepository(infra.gormDB)
	announcementRepo := announcement.NewRepository(infra.gormDB)
	catalogRepo := catalog.NewRepository(infra.gormDB)
	knowledgeRepo := knowledge.NewRepository(infra.gormDB)
	outboxRepo := kafka.NewOutboxRepository(infra.sqlDB)
	rbacRepo := rbac.NewRepository(infra.gormDB)
	searchRepo := search.NewRepository(infra.gormDB)
	sopRepo := sop.NewRepository(infra.gormDB)
	trainingRepo := training.NewRepository(infra.gormDB)

	// --- RBAC Core ---
	enforcer, err := rbacinfra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- External collaborators ---
	provider := identity.NewKeycloak(identity.KeycloakConfig{
		URL:           cfg.Keycloak.URL,
		Realm:         cfg.Keycloak.Realm,
		ClientID:      cfg.Keycloak.ClientID,
		ClientSecret:  cfg.Keycloak.ClientSecret,
		AdminUser:     cfg.Keycloak.AdminUser,
		AdminPassword: cfg.Keycloak.AdminPassword,
		Timeout:       cfg.ExternalTimeout,
	}, logger)

	images, err := newImageUploader(cfg.OSS, logger)
	if err != nil {
		return err
	}

	recorder, err := newSheetRecorder(ctx, cfg, logger)
	if err != nil {
		return err
	}

	mailer := newMailer(cfg, logger)

	sessions := session.NewManager(session.Options{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.IsProduction(),
	})

	// --- Services ---
	cacheTTL, readTimeout := cfg.CacheTTL, cfg.DB.ReadTimeout

	agentService := agent.NewService(agentRepo, provider, images, logger)
	announcementService := announcement.NewService(announcementRepo, infra.cache, cacheTTL, logger)
	authService := auth.NewService(provider, agentService, sessions, logger)
	catalogService := catalog.NewService(catalogRepo, infra.cache, catalog.Options{CacheTTL: cacheTTL, ReadTimeout: readTimeout}, logger)
	feedbackService := feedback.NewService(mailer, recorder, outboxRepo, feedback.Options{ExternalTimeout: cfg.ExternalTimeout}, logger)
	knowledgeService := knowledge.NewService(knowledgeRepo, infra.cache, knowledge.Options{CacheTTL: cacheTTL, ReadTimeout: readTimeout}, logger)
	searchService := search.NewService(searchRepo, search.Options{SourceTimeout: readTimeout}, logger)
	sopService := sop.NewService(sopRepo, infra.cache, sop.Options{CacheTTL: cacheTTL, ReadTimeout: readTimeout}, logger)
	trainingService := training.NewService(trainingRepo, infra.cache, training.Options{CacheTTL: cacheTTL, ReadTimeout: readTimeout}, logger)

	// --- Handlers ---
	agentHandler := agent.NewHandler(agentService, logger)
	announcementHandler := announcement.NewHandler(announcementService, logger)
	authHandler := auth.NewHandler(authService, sessions, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	feedbackHandler := feedback.NewHandler(feedbackService, logger)
	knowledgeHandler := knowledge.NewHandler(knowledgeService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	searchHandler := search.NewHandler(searchService, logger)
	sopHandler := sop.NewHandler(sopService, logger)
	trainingHandler := training.NewHandler(trainingService, logger)

	// --- Routes Registration ---
	router.Use(middleware.PageGuard(sessions, middleware.PageGuardConfig{
		Prefixes:  cfg.Session.ProtectedPrefixes,
		LoginPath: cfg.Session.LoginPath,
	}))

	router.GET("/healthz", healthz(infra))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, sessions)
		announcement.RegisterRoutes(api, announcementHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		feedback.RegisterRoutes(api, feedbackHandler, infra.rdb, logger)
		knowledge.RegisterRoutes(api, knowledgeHandler)
		search.RegisterRoutes(api, searchHandler)
		sop.RegisterRoutes(api, sopHandler)
		training.RegisterRoutes(api, trainingHandler)
	}

	authed := api.Group("", middleware.AuthMiddleware(sessions))
	{
		agent.RegisterRoutes(authed, agentHandler)
		rbac.RegisterRoutes(authed, rbacHandler, rbacService)
	}

	admin := api.Group("/admin", middleware.AuthMiddleware(sessions))
	{
		agent.RegisterAdminRoutes(admin, agentHandler, rbacService)
		announcement.RegisterAdminRoutes(admin, announcementHandler, rbacService)
		catalog.RegisterAdminRoutes(admin, catalogHandler, rbacService)
		knowledge.RegisterAdminRoutes(admin, knowledgeHandler, rbacService)
		sop.RegisterAdminRoutes(admin, sopHandler, rbacService)
		training.RegisterAdminRoutes(admin, trainingHandler, rbacService)
	}

	return nil
}

// newImageUploader returns nil when OSS is not configured; photo uploads then answer 503.
func newImageUploader(cfg config.OSSConfig, logger *zap.Logger) (storage.ImageUploader, error) {
	if !cfg.Enabled() {
		logger.Warn("OSS not configured, agent photo upload disabled")
		return nil, nil
	}
	store, err := storage.NewOSS(storage.OSSConfig{
		Endpoint:        cfg.Endpoint,
		AccessKeyID:     cfg.AccessKeyID,
		AccessKeySecret: cfg.AccessKeySecret,
		Bucket:          cfg.Bucket,
		PublicBaseURL:   cfg.PublicBaseURL,
		Prefix:          cfg.Prefix,
	}, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func newMailer(cfg config.Config, logger *zap.Logger) *feedback.SMTPMailer {
	return feedback.NewSMTPMailer(feedback.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Pass,
		Secure:   cfg.SMTP.Secure,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
		Timeout:  cfg.ExternalTimeout,
	}, logger)
}

func newValues(ctx context.Context, sheet config.SheetConfig) (feedback.ValuesAPI, error) {
	if !sheet.Enabled() {
		return nil, nil
	}
	v, err := feedback.NewGoogleValues(ctx, feedback.ServiceAccount{
		Email:      sheet.ServiceAccountEmail,
		PrivateKey: sheet.PrivateKey,
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func newSheetRecorder(ctx context.Context, cfg config.Config, logger *zap.Logger) (*feedback.SheetRecorder, error) {
	defaultAPI, err := newValues(ctx, cfg.Sheet)
	if err != nil {
		return nil, err
	}
	agentAPI, err := newValues(ctx, cfg.AgentSheet)
	if err != nil {
		return nil, err
	}
	if defaultAPI == nil {
		logger.Warn("feedback sheet not configured")
	}
	return feedback.NewSheetRecorder(
		defaultAPI, feedback.SheetTarget{SpreadsheetID: cfg.Sheet.ID, SheetName: cfg.Sheet.Name},
		agentAPI, feedback.SheetTarget{SpreadsheetID: cfg.AgentSheet.ID, SheetName: cfg.AgentSheet.Name},
		logger,
	), nil
}

func healthz(infra infrastructure) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"db": "ok"}
		code := http.StatusOK
		if err := infra.sqlDB.PingContext(ctx); err != nil {
			status["db"] = "down"
			code = http.StatusServiceUnavailable
		}
		if infra.rdb != nil {
			status["redis"] = "ok"
			if err := infra.rdb.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		c.JSON(code, status)
	}
}
