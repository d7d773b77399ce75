package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/middleware"
	"github.com/noah-isme/campus-hub-api/internal/service"
	"github.com/noah-isme/campus-hub-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-hub-api/pkg/middleware/requestid"
)

// RouterConfig carries everything NewRouter needs to assemble the engine.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool

	Logger  *zap.Logger
	Metrics *service.MetricsService

	Catalog   *CatalogHandler
	Results   *ResultHandler
	Dashboard *DashboardHandler
	System    *MetricsHandler
}

// NewRouter builds the gin engine with the shared middleware chain and every hub route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.WithResponseMeta())

	if cfg.System != nil {
		r.GET("/health", cfg.System.Health)
		r.GET("/ready", cfg.System.Ready)
		r.GET("/metrics", cfg.System.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	if h := cfg.Catalog; h != nil {
		api.GET("/emails", h.Emails)
		api.GET("/notes", h.Notes)
		api.GET("/clubs", h.Clubs)
		api.GET("/placements", h.Placements)
		api.GET("/notices", h.Notices)
		api.GET("/locations", h.Locations)
		api.GET("/assignments", h.Assignments)
		api.GET("/meetings", h.Meetings)

		collab := api.Group("/collaboration")
		collab.GET("/students", h.Students)
		collab.GET("/projects", h.Projects)

		fees := api.Group("/fees")
		fees.GET("", h.Fees)
		fees.GET("/summary", h.FeeSummary)
		fees.GET("/scholarships", h.Scholarships)

		attendance := api.Group("/attendance")
		attendance.GET("", h.AttendanceOverview)
		attendance.GET("/subjects", h.AttendanceSubjects)
		attendance.GET("/records", h.AttendanceRecords)

		api.GET("/schedule", h.Schedule)

		wallet := api.Group("/wallet")
		wallet.GET("", h.WalletBalance)
		wallet.GET("/transactions", h.Transactions)
	}

	if h := cfg.Results; h != nil {
		results := api.Group("/results")
		results.GET("", h.List)
		results.GET("/summary", h.Summary)
		results.GET("/export", h.Export)
	}

	if h := cfg.Dashboard; h != nil {
		api.GET("/dashboard", h.Summary)
	}

	if h := cfg.System; h != nil {
		api.GET("/system/metrics", h.Snapshot)
	}

	return r
}
