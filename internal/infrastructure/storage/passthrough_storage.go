package storage

import (
	"context"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

// PassthroughStorage persists nothing. Save hands the payload back to the
// caller, which carries it in the request/response cycle instead.
type PassthroughStorage struct{}

func NewPassthroughStorage() *PassthroughStorage {
	return &PassthroughStorage{}
}

func (s *PassthroughStorage) Save(_ context.Context, area entity.Area, originalName string, data []byte) (*entity.StoredFile, error) {
	if !area.IsValid() {
		return nil, domain.ErrInvalidStorageArea
	}

	file := entity.NewStoredFile(area, originalName, int64(len(data)))
	file.Data = data
	return file, nil
}

func (s *PassthroughStorage) Read(context.Context, entity.Area, string) ([]byte, error) {
	return nil, domain.ErrFileNotFound
}

func (s *PassthroughStorage) Delete(context.Context, entity.Area, string) error {
	return nil
}

func (s *PassthroughStorage) ListWithAge(context.Context, entity.Area) ([]entity.FileAge, error) {
	return nil, nil
}
