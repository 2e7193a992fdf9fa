package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

type memoryEntry struct {
	data      []byte
	createdAt time.Time
}

// MemoryStorage keeps files in a bounded LRU per area. Entries also expire on
// their own after ttl, so an idle process does not hold images forever.
type MemoryStorage struct {
	areas map[entity.Area]*expirable.LRU[string, memoryEntry]
	now   func() time.Time
}

func NewMemoryStorage(maxEntries int, ttl time.Duration) *MemoryStorage {
	areas := make(map[entity.Area]*expirable.LRU[string, memoryEntry], len(entity.Areas()))
	for _, area := range entity.Areas() {
		areas[area] = expirable.NewLRU[string, memoryEntry](maxEntries, nil, ttl)
	}
	return &MemoryStorage{areas: areas, now: time.Now}
}

func (s *MemoryStorage) Save(_ context.Context, area entity.Area, originalName string, data []byte) (*entity.StoredFile, error) {
	cache, ok := s.areas[area]
	if !ok {
		return nil, domain.ErrInvalidStorageArea
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	file := entity.NewStoredFile(area, originalName, int64(len(buf)))
	cache.Add(file.Name, memoryEntry{data: buf, createdAt: s.now()})

	file.Path = entity.PublicPath(area, file.Name)
	return file, nil
}

func (s *MemoryStorage) Read(_ context.Context, area entity.Area, name string) ([]byte, error) {
	cache, ok := s.areas[area]
	if !ok {
		return nil, domain.ErrFileNotFound
	}

	e, ok := cache.Get(name)
	if !ok {
		return nil, domain.ErrFileNotFound
	}

	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, nil
}

func (s *MemoryStorage) Delete(_ context.Context, area entity.Area, name string) error {
	if cache, ok := s.areas[area]; ok {
		cache.Remove(name)
	}
	return nil
}

func (s *MemoryStorage) ListWithAge(_ context.Context, area entity.Area) ([]entity.FileAge, error) {
	cache, ok := s.areas[area]
	if !ok {
		return nil, domain.ErrInvalidStorageArea
	}

	now := s.now()
	keys := cache.Keys()
	files := make([]entity.FileAge, 0, len(keys))
	for _, k := range keys {
		e, ok := cache.Peek(k)
		if !ok {
			continue
		}
		files = append(files, entity.FileAge{Name: k, Age: now.Sub(e.createdAt)})
	}
	return files, nil
}
