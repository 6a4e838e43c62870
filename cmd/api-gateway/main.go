package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/contract-capacity-api/api/swagger"
	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/handler"
	internalmiddleware "github.com/noah-isme/contract-capacity-api/internal/middleware"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	"github.com/noah-isme/contract-capacity-api/internal/repository"
	"github.com/noah-isme/contract-capacity-api/internal/service"
	"github.com/noah-isme/contract-capacity-api/pkg/cache"
	"github.com/noah-isme/contract-capacity-api/pkg/config"
	"github.com/noah-isme/contract-capacity-api/pkg/database"
	"github.com/noah-isme/contract-capacity-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/contract-capacity-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/contract-capacity-api/pkg/middleware/requestid"
)

// @title Contract Capacity API
// @version 1.0.0
// @description Instructor contract and capacity planning: workload imports, extra-grade agenda and exports.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}

	var sessionRepo service.CacheRepository
	var redisRepo *repository.CacheRepository
	if redisClient != nil {
		redisRepo = repository.NewCacheRepository(redisClient, logr)
		defer redisRepo.Close() //nolint:errcheck
		sessionRepo = redisRepo
	} else {
		logr.Warn("redis disabled, import sessions are kept in process memory")
		sessionRepo = repository.NewMemoryCacheRepository()
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := validator.New()
	ids := capacity.UUIDGenerator

	instructorRepo := repository.NewInstructorRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	sessionCache := service.NewCacheService(sessionRepo, metricsSvc, cfg.Imports.SessionTTL, logr, true)
	instructorSvc := service.NewInstructorService(instructorRepo, validate, logr, ids)
	activitySvc := service.NewActivityService(activityRepo, instructorRepo, validate, metricsSvc, logr, ids)
	importSvc := service.NewImportService(instructorRepo, sessionCache, metricsSvc, logr, service.ImportConfig{
		MaxFileSizeBytes: cfg.Imports.MaxFileSizeBytes,
		SessionTTL:       cfg.Imports.SessionTTL,
	}, ids)
	exportSvc := service.NewExportService(instructorRepo, activitySvc, logr, nil, nil)

	instructorHandler := handler.NewInstructorHandler(instructorSvc)
	importHandler := handler.NewImportHandler(importSvc, logr)
	activityHandler := handler.NewActivityHandler(activitySvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	checks := map[string]handler.ReadinessCheck{"database": db.PingContext}
	if redisRepo != nil {
		checks["redis"] = redisRepo.Ping
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc, checks)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	readers := internalmiddleware.RequireRoles(models.RoleAdmin, models.RoleCoordinator, models.RoleViewer)
	writers := internalmiddleware.RequireRoles(models.RoleAdmin, models.RoleCoordinator)
	audit := func(action, resource string) gin.HandlerFunc {
		return internalmiddleware.Audit(logr, action, resource)
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmiddleware.JWT(authSvc))

	instructors := api.Group("/instructors")
	instructors.GET("", readers, instructorHandler.List)
	instructors.GET("/:id", readers, instructorHandler.Get)
	instructors.POST("", writers, audit("create", "instructor"), instructorHandler.Create)
	instructors.PUT("/:id", writers, audit("update", "instructor"), instructorHandler.Update)
	instructors.DELETE("/:id", internalmiddleware.RequireRoles(models.RoleAdmin), audit("delete", "instructor"), instructorHandler.Delete)
	instructors.POST("/:id/contract/toggle", writers, audit("toggle_contract", "instructor"), instructorHandler.ToggleContract)
	instructors.POST("/:id/status/toggle", writers, audit("toggle_status", "instructor"), instructorHandler.ToggleStatus)
	instructors.PUT("/:id/capacity", writers, audit("set_capacity", "instructor"), instructorHandler.SetCapacity)
	instructors.PUT("/:id/work-shift", writers, audit("set_work_shift", "instructor"), instructorHandler.SetWorkShift)
	instructors.PUT("/:id/area", writers, audit("set_area", "instructor"), instructorHandler.SetArea)

	imports := api.Group("/imports/workload")
	imports.POST("", writers, audit("preview", "workload_import"), importHandler.Upload)
	imports.GET("/:sessionId", writers, importHandler.Get)
	imports.POST("/:sessionId/confirm", writers, audit("confirm", "workload_import"), importHandler.Confirm)
	imports.DELETE("/:sessionId", writers, audit("cancel", "workload_import"), importHandler.Cancel)
	imports.DELETE("", internalmiddleware.RequireRoles(models.RoleAdmin), audit("purge", "workload_import"), importHandler.Purge)

	activities := api.Group("/activities")
	activities.GET("", readers, activityHandler.ListMonth)
	activities.POST("/batch", writers, audit("schedule_batch", "activity"), activityHandler.ScheduleBatch)
	activities.DELETE("/:id", writers, audit("delete", "activity"), activityHandler.Delete)

	calendar := api.Group("/calendar")
	calendar.GET("/grid", readers, activityHandler.Grid)
	calendar.POST("/selection/toggle", readers, activityHandler.ToggleSelection)

	exports := api.Group("/exports")
	exports.GET("/capacity.csv", readers, exportHandler.CapacitySheet)
	exports.GET("/agenda.pdf", readers, exportHandler.AgendaPDF)

	api.GET("/metrics/summary", internalmiddleware.RequireRoles(models.RoleAdmin), metricsHandler.Summary)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "redis", redisClient != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
