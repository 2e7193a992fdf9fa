package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/config"
)

const (
	minioUser     = "pixforge"
	minioPassword = "pixforge-secret"
)

func setupS3Storage(t *testing.T) *S3Storage {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:RELEASE.2025-04-22T22-12-26Z",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Cmd: []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	s, err := NewS3Storage(config.S3Config{
		Endpoint:        fmt.Sprintf("http://%s:%s", host, port.Port()),
		Region:          "us-east-1",
		Bucket:          "pixforge-test",
		AccessKeyID:     minioUser,
		SecretAccessKey: minioPassword,
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	require.NoError(t, s.EnsureBucket(ctx))
	require.NoError(t, s.EnsureBucket(ctx), "EnsureBucket must be repeatable")

	return s
}

func TestS3Storage_Integration(t *testing.T) {
	s := setupS3Storage(t)
	ctx := context.Background()
	content := []byte("png payload")

	file, err := s.Save(ctx, entity.AreaUploads, "cat.png", content)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+file.Name, file.Path)

	got, err := s.Read(ctx, entity.AreaUploads, file.Name)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = s.Read(ctx, entity.AreaResized, file.Name)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	files, err := s.ListWithAge(ctx, entity.AreaUploads)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, file.Name, files[0].Name)
	assert.Less(t, files[0].Age, time.Minute)

	require.NoError(t, s.Delete(ctx, entity.AreaUploads, file.Name))
	require.NoError(t, s.Delete(ctx, entity.AreaUploads, file.Name))

	_, err = s.Read(ctx, entity.AreaUploads, file.Name)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}
