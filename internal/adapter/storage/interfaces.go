package storage

import (
	"context"

	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// FileStorage keeps files in one of two areas. Read returns domain.ErrFileNotFound
// for absent files and Delete treats an absent file as already deleted.
type FileStorage interface {
	Save(ctx context.Context, area entity.Area, originalName string, data []byte) (*entity.StoredFile, error)
	Read(ctx context.Context, area entity.Area, name string) ([]byte, error)
	Delete(ctx context.Context, area entity.Area, name string) error
	ListWithAge(ctx context.Context, area entity.Area) ([]entity.FileAge, error)
}

// ImageResizer produces an image of exactly width x height. It returns the
// encoded bytes and their media type.
type ImageResizer interface {
	Resize(ctx context.Context, data []byte, mediaType string, width, height int) ([]byte, string, error)
}

// ImageInspector reads an image header. It never decodes pixel data, so it is
// safe to call on untrusted input before resizing.
type ImageInspector interface {
	Inspect(data []byte) (valueobject.ImageInfo, error)
}

type DeletionScheduler interface {
	ScheduleDelete(area entity.Area, name string)
}
