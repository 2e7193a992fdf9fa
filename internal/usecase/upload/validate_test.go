package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

func TestValidate(t *testing.T) {
	sizes := []int64{0, 1, upload.MaxFileSize - 1, upload.MaxFileSize, upload.MaxFileSize + 1, 50 << 20}
	allowed := []string{"image/jpeg", "image/png", "image/webp", "IMAGE/PNG"}
	rejected := []string{"", "image/gif", "application/pdf", "text/html", "image/svg+xml"}

	t.Run("size limit applies to every allowed type", func(t *testing.T) {
		for _, mediaType := range allowed {
			for _, size := range sizes {
				err := upload.Validate(size, mediaType)
				if size > upload.MaxFileSize {
					assert.ErrorIs(t, err, domain.ErrFileTooLarge, "%s %d", mediaType, size)
				} else {
					assert.NoError(t, err, "%s %d", mediaType, size)
				}
			}
		}
	})

	t.Run("unsupported types fail regardless of size", func(t *testing.T) {
		for _, mediaType := range rejected {
			for _, size := range sizes {
				err := upload.Validate(size, mediaType)
				assert.Error(t, err, "%s %d", mediaType, size)
				if size <= upload.MaxFileSize {
					assert.ErrorIs(t, err, domain.ErrUnsupportedType)
				}
			}
		}
	})
}

func TestIsAllowedType(t *testing.T) {
	assert.True(t, upload.IsAllowedType("image/jpeg"))
	assert.True(t, upload.IsAllowedType(" image/webp "))
	assert.False(t, upload.IsAllowedType("image/jpg"))
}
