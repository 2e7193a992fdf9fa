package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/config"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/middleware"
)

type Router struct {
	engine          *gin.Engine
	uploadHandler   *handler.UploadHandler
	resizeHandler   *handler.ResizeHandler
	downloadHandler *handler.DownloadHandler
	cleanupHandler  *handler.CleanupHandler
	sweeper         middleware.Sweeper
	rateLimiter     *middleware.RateLimiter
	cors            config.CORSConfig
	logger          *zap.Logger
}

type RouterConfig struct {
	UploadHandler   *handler.UploadHandler
	ResizeHandler   *handler.ResizeHandler
	DownloadHandler *handler.DownloadHandler
	CleanupHandler  *handler.CleanupHandler
	// Sweeper runs opportunistic sweeps; nil disables them.
	Sweeper middleware.Sweeper
	// RateLimiter guards mutating routes; nil disables limiting.
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		uploadHandler:   cfg.UploadHandler,
		resizeHandler:   cfg.ResizeHandler,
		downloadHandler: cfg.DownloadHandler,
		cleanupHandler:  cfg.CleanupHandler,
		sweeper:         cfg.Sweeper,
		rateLimiter:     cfg.RateLimiter,
		cors:            cfg.CORS,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS(r.cors))
	if r.sweeper != nil {
		r.engine.Use(middleware.OpportunisticSweep(r.sweeper, "/health", "/metrics", "/cleanup"))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	mutating := r.engine.Group("")
	if r.rateLimiter != nil {
		mutating.Use(r.rateLimiter.Limit())
	}
	{
		mutating.POST("/upload", r.uploadHandler.Upload)
		mutating.POST("/resize", r.resizeHandler.Resize)
		mutating.POST("/cleanup", r.cleanupHandler.Cleanup)
	}

	r.engine.GET("/download", r.downloadHandler.Download)
	r.engine.GET("/download/:fileName", r.downloadHandler.Download)
	r.engine.GET("/resized/*path", r.downloadHandler.Serve(entity.AreaResized))
	r.engine.GET("/uploads/*path", r.downloadHandler.Serve(entity.AreaUploads))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
