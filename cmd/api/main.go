package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler"
	port "github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/config"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/observability"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/server"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/storage"
	"github.com/marcos-nsantos/pixforge/internal/usecase/cleanup"
	"github.com/marcos-nsantos/pixforge/internal/usecase/download"
	"github.com/marcos-nsantos/pixforge/internal/usecase/resize"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileStorage, err := newFileStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create file storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	logger.Info("file storage ready", zap.String("driver", cfg.Storage.Driver))

	// Image processing
	invoker := resize.NewInvoker(
		imageproc.NewLanczosResizer(cfg.Resize.JPEGQuality),
		imageproc.NewScaleResizer(cfg.Resize.JPEGQuality),
		cfg.Resize.Timeout,
		logger,
	)

	// Use cases
	janitor := cleanup.NewJanitor(fileStorage, cleanup.Config{
		Retention:          cfg.Janitor.Retention,
		SweepInterval:      cfg.Janitor.SweepInterval,
		DeleteDelay:        cfg.Janitor.DownloadDeleteDelay,
		BackgroundInterval: cfg.Janitor.BackgroundInterval,
	}, logger)
	uploadSvc := upload.NewService(fileStorage, cfg.Upload.MaxFileSize)
	resizeSvc := resize.NewService(fileStorage, invoker, imageproc.NewInspector(),
		resize.WithLimits(cfg.Resize.MaxSide, cfg.Resize.MaxSourcePixels),
	)
	downloadSvc := download.NewService(fileStorage, janitor)

	// Handlers
	uploadHandler := handler.NewUploadHandler(uploadSvc, cfg.Upload.MaxFileSize)
	resizeHandler := handler.NewResizeHandler(resizeSvc, cfg.Upload.MaxFileSize)
	downloadHandler := handler.NewDownloadHandler(downloadSvc)
	cleanupHandler := handler.NewCleanupHandler(janitor)

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		UploadHandler:   uploadHandler,
		ResizeHandler:   resizeHandler,
		DownloadHandler: downloadHandler,
		CleanupHandler:  cleanupHandler,
		Sweeper:         janitor,
		RateLimiter:     rateLimiter,
		CORS:            cfg.CORS,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		janitor.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	cancel()
	<-janitorDone

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newFileStorage(ctx context.Context, cfg *config.Config) (port.FileStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverDisk:
		diskStorage, err := storage.NewDiskStorage(cfg.Storage.Root)
		if err != nil {
			return nil, err
		}
		return diskStorage, nil
	case config.StorageDriverPassthrough:
		return storage.NewPassthroughStorage(), nil
	case config.StorageDriverMemory:
		return storage.NewMemoryStorage(cfg.Storage.MemoryMaxEntries, cfg.Janitor.Retention), nil
	case config.StorageDriverS3:
		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return nil, err
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3Storage, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
