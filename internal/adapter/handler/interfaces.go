package handler

import (
	"context"

	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/usecase/cleanup"
	"github.com/marcos-nsantos/pixforge/internal/usecase/download"
	"github.com/marcos-nsantos/pixforge/internal/usecase/resize"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.UploadResult, error)
}

type ResizeService interface {
	Resize(ctx context.Context, input resize.ResizeInput) (*resize.ResizeResult, error)
}

type DownloadService interface {
	Download(ctx context.Context, name string) (*download.File, error)
	Serve(ctx context.Context, area entity.Area, name string) (*download.File, error)
}

type CleanupService interface {
	Cleanup(ctx context.Context, input cleanup.CleanupInput) *cleanup.CleanupResult
}
