package upload

import (
	"context"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

const fallbackName = "image"

type Service struct {
	storage   storage.FileStorage
	maxSize   int64
	sanitizer *bluemonday.Policy
}

func NewService(fileStorage storage.FileStorage, maxSize int64) *Service {
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	return &Service{
		storage:   fileStorage,
		maxSize:   maxSize,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type UploadResult struct {
	File *entity.StoredFile
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.File == nil {
		return nil, domain.ErrNoFileProvided
	}

	if err := validate(input.Size, input.ContentType, s.maxSize); err != nil {
		return nil, err
	}

	// The declared size can lie; never buffer more than the limit allows.
	data, err := io.ReadAll(io.LimitReader(input.File, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, domain.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, domain.ErrNoFileProvided
	}

	name := s.displayName(input.Filename, input.ContentType)

	file, err := s.storage.Save(ctx, entity.AreaUploads, name, data)
	if err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	return &UploadResult{File: file}, nil
}

// displayName strips directories and markup from the client-supplied name and
// makes sure it carries an image extension.
func (s *Service) displayName(filename, contentType string) string {
	name := html.UnescapeString(s.sanitizer.Sanitize(filename))
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == "/" {
		name = fallbackName
	}

	if entity.MediaTypeFromName(name) == entity.MediaTypeBinary {
		if ext := entity.ExtensionForMediaType(strings.ToLower(strings.TrimSpace(contentType))); ext != "" {
			name += "." + ext
		}
	}
	return name
}
