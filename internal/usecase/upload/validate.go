package upload

import (
	"strings"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

const MaxFileSize int64 = 10 << 20 // 10MB

var allowedTypes = map[string]struct{}{
	entity.MediaTypeJPEG: {},
	entity.MediaTypePNG:  {},
	entity.MediaTypeWebP: {},
}

// Validate checks an upload against the default 10MB limit and the image allow-list.
func Validate(size int64, mediaType string) error {
	return validate(size, mediaType, MaxFileSize)
}

func validate(size int64, mediaType string, limit int64) error {
	if size > limit {
		return domain.ErrFileTooLarge
	}
	if !IsAllowedType(mediaType) {
		return domain.ErrUnsupportedType
	}
	return nil
}

func IsAllowedType(mediaType string) bool {
	_, ok := allowedTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}
