package upload_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/mocks"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

func TestService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := mocks.NewMockFileStorage(ctrl)
	svc := upload.NewService(fileStorage, 1024)
	ctx := context.Background()

	t.Run("saves a valid image", func(t *testing.T) {
		content := []byte("png bytes")
		stored := &entity.StoredFile{Name: "abc.png", OriginalName: "photo.png", Path: "/uploads/abc.png"}

		fileStorage.EXPECT().
			Save(ctx, entity.AreaUploads, "photo.png", content).
			Return(stored, nil)

		result, err := svc.Upload(ctx, upload.UploadInput{
			File:        bytes.NewReader(content),
			Filename:    "photo.png",
			ContentType: "image/png",
			Size:        int64(len(content)),
		})

		require.NoError(t, err)
		assert.Same(t, stored, result.File)
	})

	t.Run("strips directories and markup from the display name", func(t *testing.T) {
		fileStorage.EXPECT().
			Save(ctx, entity.AreaUploads, "cat.jpg", gomock.Any()).
			Return(&entity.StoredFile{Name: "abc.jpg"}, nil)

		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader("jpeg"),
			Filename:    `..\..\etc/<b>cat</b>.jpg`,
			ContentType: "image/jpeg",
			Size:        4,
		})
		require.NoError(t, err)
	})

	t.Run("adds an extension from the content type", func(t *testing.T) {
		fileStorage.EXPECT().
			Save(ctx, entity.AreaUploads, "image.webp", gomock.Any()).
			Return(&entity.StoredFile{Name: "abc.webp"}, nil)

		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader("webp"),
			Filename:    "",
			ContentType: "image/webp",
			Size:        4,
		})
		require.NoError(t, err)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, err := svc.Upload(ctx, upload.UploadInput{Filename: "a.png", ContentType: "image/png"})
		assert.ErrorIs(t, err, domain.ErrNoFileProvided)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader(""),
			Filename:    "a.png",
			ContentType: "image/png",
		})
		assert.ErrorIs(t, err, domain.ErrNoFileProvided)
	})

	t.Run("rejects declared oversize", func(t *testing.T) {
		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader("x"),
			Filename:    "a.png",
			ContentType: "image/png",
			Size:        1025,
		})
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("rejects body larger than declared", func(t *testing.T) {
		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        bytes.NewReader(make([]byte, 2048)),
			Filename:    "a.png",
			ContentType: "image/png",
			Size:        10,
		})
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader("gif"),
			Filename:    "a.gif",
			ContentType: "image/gif",
			Size:        3,
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		boom := errors.New("disk full")
		fileStorage.EXPECT().
			Save(ctx, entity.AreaUploads, "a.png", gomock.Any()).
			Return(nil, boom)

		_, err := svc.Upload(ctx, upload.UploadInput{
			File:        strings.NewReader("png"),
			Filename:    "a.png",
			ContentType: "image/png",
			Size:        3,
		})
		assert.ErrorIs(t, err, boom)
	})
}
