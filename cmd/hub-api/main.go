package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-hub-api/api/swagger"
	"github.com/noah-isme/campus-hub-api/internal/handler"
	"github.com/noah-isme/campus-hub-api/internal/repository"
	"github.com/noah-isme/campus-hub-api/internal/service"
	"github.com/noah-isme/campus-hub-api/pkg/cache"
	"github.com/noah-isme/campus-hub-api/pkg/config"
	"github.com/noah-isme/campus-hub-api/pkg/jobs"
	"github.com/noah-isme/campus-hub-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Campus Hub API
// @version 1.0.0
// @description Student hub catalogs, academic results and transcript exports
// @BasePath /api/v1
// @schemes http

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var seeds fs.FS
	if cfg.Catalog.SeedDir != "" {
		seeds = os.DirFS(cfg.Catalog.SeedDir)
	}
	catalogRepo, err := repository.NewCatalogRepository(seeds, logr)
	if err != nil {
		logr.Fatal("failed to load catalogs", zap.String("seed_dir", cfg.Catalog.SeedDir), zap.Error(err))
	}

	checks := map[string]handler.Pinger{}
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
			redisClient = nil
			checks["redis"] = handler.FailedCheck(fmt.Errorf("cache disabled at startup: %w", err))
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, redisClient != nil)
	validate := validator.New()

	catalogSvc := service.NewCatalogService(catalogRepo, validate, metricsSvc, service.CatalogConfig{
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		MaxPageSize:     cfg.Catalog.MaxPageSize,
	}, logr)
	resultSvc := service.NewResultService(catalogRepo, cacheSvc, metricsSvc, validate, service.ResultConfig{
		SummaryTTL:     cfg.Cache.TTL,
		ExportsEnabled: cfg.Exports.Enabled,
	}, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Catalogs:  catalogRepo,
		Fees:      catalogSvc,
		Semesters: catalogRepo,
		Cache:     cacheSvc,
		Logger:    logr,
		Config:    service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})

	refresher := service.NewCatalogRefresher(catalogRepo, cacheSvc, logr)
	if err := refresher.Flush(ctx); err != nil {
		logr.Warn("failed to flush derived cache", zap.Error(err))
	}

	scheduler, err := jobs.NewScheduler(logr)
	if err != nil {
		logr.Fatal("failed to init scheduler", zap.Error(err))
	}
	if cfg.Dashboard.WarmInterval > 0 && cacheSvc.Enabled() {
		if err := scheduler.Every("dashboard-warm", cfg.Dashboard.WarmInterval, dashboardSvc.Warm); err != nil {
			logr.Fatal("failed to schedule dashboard warmer", zap.Error(err))
		}
	}
	if cfg.Catalog.ReloadInterval > 0 && cfg.Catalog.SeedDir != "" {
		if err := scheduler.Every("catalog-reload", cfg.Catalog.ReloadInterval, refresher.Refresh); err != nil {
			logr.Fatal("failed to schedule catalog reload", zap.Error(err))
		}
	}
	scheduler.Start()

	if redisClient != nil {
		checks["redis"] = cacheRepo
	}

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Metrics:        metricsSvc,
		Catalog:        handler.NewCatalogHandler(catalogSvc),
		Results:        handler.NewResultHandler(resultSvc),
		Dashboard:      handler.NewDashboardHandler(dashboardSvc),
		System:         handler.NewMetricsHandler(metricsSvc, checks),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("http shutdown failed", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		logr.Warn("scheduler shutdown failed", zap.Error(err))
	}
}
