package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

const tmpSuffix = ".tmp"

// DiskStorage keeps each area as a flat directory under root.
type DiskStorage struct {
	root string
	now  func() time.Time
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	for _, area := range entity.Areas() {
		dir := filepath.Join(root, string(area))
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", area, err)
		}
	}

	return &DiskStorage{root: root, now: time.Now}, nil
}

func (s *DiskStorage) Save(_ context.Context, area entity.Area, originalName string, data []byte) (*entity.StoredFile, error) {
	if !area.IsValid() {
		return nil, domain.ErrInvalidStorageArea
	}

	file := entity.NewStoredFile(area, originalName, int64(len(data)))
	fullPath := s.path(area, file.Name)
	tmpPath := fullPath + tmpSuffix

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("writing file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("syncing file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("closing file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("renaming file: %w", err)
	}

	file.Path = entity.PublicPath(area, file.Name)
	return file, nil
}

func (s *DiskStorage) Read(_ context.Context, area entity.Area, name string) ([]byte, error) {
	if !area.IsValid() || !entity.ValidName(name) {
		return nil, domain.ErrFileNotFound
	}

	data, err := os.ReadFile(s.path(area, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	return data, nil
}

func (s *DiskStorage) Delete(_ context.Context, area entity.Area, name string) error {
	if !area.IsValid() || !deletableName(name) {
		return nil
	}

	err := os.Remove(s.path(area, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting file %s: %w", name, err)
	}
	return nil
}

// ListWithAge reports every regular file in the area, including temp files left
// behind by interrupted writes, so the janitor eventually removes those too.
func (s *DiskStorage) ListWithAge(_ context.Context, area entity.Area) ([]entity.FileAge, error) {
	if !area.IsValid() {
		return nil, domain.ErrInvalidStorageArea
	}

	entries, err := os.ReadDir(filepath.Join(s.root, string(area)))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", area, err)
	}

	now := s.now()
	files := make([]entity.FileAge, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, entity.FileAge{
			Name: e.Name(),
			Age:  now.Sub(info.ModTime()),
		})
	}
	return files, nil
}

func (s *DiskStorage) path(area entity.Area, name string) string {
	return filepath.Join(s.root, string(area), name)
}

// Root returns the directory holding both areas.
func (s *DiskStorage) Root() string {
	return s.root
}

func deletableName(name string) bool {
	return entity.ValidName(strings.TrimSuffix(name, tmpSuffix))
}
