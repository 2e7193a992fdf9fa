package download

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

type Service struct {
	storage   storage.FileStorage
	scheduler storage.DeletionScheduler
}

func NewService(fileStorage storage.FileStorage, scheduler storage.DeletionScheduler) *Service {
	return &Service{storage: fileStorage, scheduler: scheduler}
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Download returns a resized image and schedules its deletion. The response
// never waits for the delete.
func (s *Service) Download(ctx context.Context, name string) (*File, error) {
	file, err := s.Serve(ctx, entity.AreaResized, name)
	if err != nil {
		return nil, err
	}

	if s.scheduler != nil {
		s.scheduler.ScheduleDelete(entity.AreaResized, file.Name)
	}
	return file, nil
}

// Serve returns a stored file without scheduling anything.
func (s *Service) Serve(ctx context.Context, area entity.Area, name string) (*File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNoFileSpecified
	}
	if !area.IsValid() {
		return nil, domain.ErrFileNotFound
	}

	data, err := s.storage.Read(ctx, area, name)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("reading %s/%s: %w", area, name, err)
	}

	return &File{
		Name:        name,
		ContentType: entity.MediaTypeFromName(name),
		Data:        data,
	}, nil
}
