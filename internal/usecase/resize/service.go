package resize

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/domain/valueobject"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

const (
	MinPercentage = 10
	MaxPercentage = 100

	// DefaultMaxSide caps each side of a ratio-mode target.
	DefaultMaxSide = 10000
	// DefaultMaxSourcePixels caps the decoded size of a source image.
	DefaultMaxSourcePixels int64 = 50_000_000
)

type Service struct {
	storage         storage.FileStorage
	resizer         storage.ImageResizer
	inspector       storage.ImageInspector
	maxSide         int
	maxSourcePixels int64
}

type Option func(*Service)

// WithLimits overrides the target side and source pixel caps. Values <= 0
// keep the defaults.
func WithLimits(maxSide int, maxSourcePixels int64) Option {
	return func(s *Service) {
		if maxSide > 0 {
			s.maxSide = maxSide
		}
		if maxSourcePixels > 0 {
			s.maxSourcePixels = maxSourcePixels
		}
	}
}

func NewService(fileStorage storage.FileStorage, resizer storage.ImageResizer, inspector storage.ImageInspector, opts ...Option) *Service {
	s := &Service{
		storage:         fileStorage,
		resizer:         resizer,
		inspector:       inspector,
		maxSide:         DefaultMaxSide,
		maxSourcePixels: DefaultMaxSourcePixels,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResizeInput names an upload and the target size. Data, when set, holds the
// source bytes the client kept from a pass-through upload and is used instead
// of reading the uploads area. Inline data goes through the same validation
// as an upload.
type ResizeInput struct {
	FileName   string
	Mode       entity.ResizeMode
	Width      int
	Height     int
	Percentage int
	Data       []byte
}

type ResizeResult struct {
	File         *entity.StoredFile
	OriginalName string
	Width        int
	Height       int
}

func (s *Service) Resize(ctx context.Context, input ResizeInput) (*ResizeResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	data, err := s.source(ctx, input)
	if err != nil {
		return nil, err
	}

	info, err := s.inspect(input, data)
	if err != nil {
		return nil, err
	}

	target := valueobject.NewDimensions(input.Width, input.Height)
	if input.Mode == entity.ResizeModePercentage {
		target = info.ScalePercent(input.Percentage)
	}

	mediaType := info.MediaType
	if mediaType == "" {
		mediaType = entity.MediaTypeFromName(input.FileName)
	}

	out, outType, err := s.resizer.Resize(ctx, data, mediaType, target.Width, target.Height)
	if err != nil {
		return nil, err
	}

	file, err := s.storage.Save(ctx, entity.AreaResized, derivedName(input.FileName, outType), out)
	if err != nil {
		return nil, fmt.Errorf("saving resized image: %w", err)
	}

	return &ResizeResult{
		File:         file,
		OriginalName: input.FileName,
		Width:        target.Width,
		Height:       target.Height,
	}, nil
}

func (s *Service) validateInput(input ResizeInput) error {
	if strings.TrimSpace(input.FileName) == "" {
		return domain.ErrNoFileSpecified
	}

	switch input.Mode {
	case entity.ResizeModeRatio:
		if input.Width <= 0 || input.Height <= 0 {
			return domain.ErrMissingDimensions
		}
		if input.Width > s.maxSide || input.Height > s.maxSide {
			return domain.ErrDimensionsTooLarge
		}
	case entity.ResizeModePercentage:
		if input.Percentage < MinPercentage || input.Percentage > MaxPercentage {
			return domain.ErrInvalidPercentage
		}
	default:
		return domain.ErrInvalidResizeType
	}
	return nil
}

func (s *Service) source(ctx context.Context, input ResizeInput) ([]byte, error) {
	if len(input.Data) > 0 {
		if err := upload.Validate(int64(len(input.Data)), entity.MediaTypeFromName(input.FileName)); err != nil {
			return nil, err
		}
		return input.Data, nil
	}

	data, err := s.storage.Read(ctx, entity.AreaUploads, input.FileName)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	return data, nil
}

// inspect reads the header before any pixel is decoded. A header that cannot
// be read fails percentage mode outright; ratio mode leaves the verdict to the
// resizers, whose failure is reported as a processing error.
func (s *Service) inspect(input ResizeInput, data []byte) (valueobject.ImageInfo, error) {
	info, err := s.inspector.Inspect(data)
	if err != nil || !info.IsValid() {
		if input.Mode == entity.ResizeModePercentage {
			return valueobject.ImageInfo{}, domain.ErrUnreadableImage
		}
		return valueobject.ImageInfo{}, nil
	}

	if !upload.IsAllowedType(info.MediaType) {
		return valueobject.ImageInfo{}, domain.ErrUnsupportedType
	}
	if info.Pixels() > s.maxSourcePixels {
		return valueobject.ImageInfo{}, domain.ErrImageTooLarge
	}
	return info, nil
}

// derivedName keeps the source base name but takes the extension of the
// encoded output, so a webp source resized to png is saved as .png.
func derivedName(sourceName, outType string) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	if ext := entity.ExtensionForMediaType(outType); ext != "" {
		return base + "." + ext
	}
	return sourceName
}
