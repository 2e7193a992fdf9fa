package storage

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/pixforge/internal/domain"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

func newTestDiskStorage(t *testing.T) *DiskStorage {
	t.Helper()

	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewDiskStorage_CreatesAreaDirectories(t *testing.T) {
	s := newTestDiskStorage(t)

	for _, area := range entity.Areas() {
		info, err := os.Stat(filepath.Join(s.Root(), string(area)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDiskStorage_SaveRead(t *testing.T) {
	ctx := context.Background()
	s := newTestDiskStorage(t)
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}

	file, err := s.Save(ctx, entity.AreaUploads, "cat.png", content)
	require.NoError(t, err)

	assert.Equal(t, "cat.png", file.OriginalName)
	assert.Equal(t, entity.MediaTypePNG, file.MediaType)
	assert.Equal(t, "/uploads/"+file.Name, file.Path)
	assert.Nil(t, file.Data)

	got, err := s.Read(ctx, entity.AreaUploads, file.Name)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = os.Stat(filepath.Join(s.Root(), "uploads", file.Name+tmpSuffix))
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")

	_, err = s.Read(ctx, entity.AreaResized, file.Name)
	assert.ErrorIs(t, err, domain.ErrFileNotFound, "areas are independent")
}

func TestDiskStorage_Read(t *testing.T) {
	ctx := context.Background()
	s := newTestDiskStorage(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := s.Read(ctx, entity.AreaResized, "missing.png")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("path traversal", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "secret.txt"), []byte("x"), 0o600))

		_, err := s.Read(ctx, entity.AreaUploads, "../secret.txt")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("unknown area", func(t *testing.T) {
		_, err := s.Read(ctx, entity.Area("tmp"), "a.png")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})
}

func TestDiskStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestDiskStorage(t)

	file, err := s.Save(ctx, entity.AreaResized, "a.jpg", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, entity.AreaResized, file.Name))
	require.NoError(t, s.Delete(ctx, entity.AreaResized, file.Name))

	_, err = s.Read(ctx, entity.AreaResized, file.Name)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestDiskStorage_ListWithAge(t *testing.T) {
	ctx := context.Background()
	s := newTestDiskStorage(t)
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	ages := map[string]time.Duration{
		"one.png":  1 * time.Minute,
		"four.png": 4 * time.Minute,
		"six.png":  6 * time.Minute,
	}
	for name, age := range ages {
		path := filepath.Join(s.Root(), "uploads", name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o640))
		mtime := now.Add(-age)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	require.NoError(t, os.Mkdir(filepath.Join(s.Root(), "uploads", "nested"), 0o750))

	files, err := s.ListWithAge(ctx, entity.AreaUploads)
	require.NoError(t, err)
	sort.Slice(files, func(i, j int) bool { return files[i].Age < files[j].Age })

	require.Len(t, files, 3)
	assert.Equal(t, entity.FileAge{Name: "one.png", Age: time.Minute}, files[0])
	assert.Equal(t, entity.FileAge{Name: "four.png", Age: 4 * time.Minute}, files[1])
	assert.Equal(t, entity.FileAge{Name: "six.png", Age: 6 * time.Minute}, files[2])

	empty, err := s.ListWithAge(ctx, entity.AreaResized)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDiskStorage_DeletesLeftoverTempFiles(t *testing.T) {
	ctx := context.Background()
	s := newTestDiskStorage(t)
	name := "0b0e6f4e-7f57-4d43-9a53-2b1b7f0d8a11.png" + tmpSuffix
	path := filepath.Join(s.Root(), "resized", name)
	require.NoError(t, os.WriteFile(path, []byte("partial"), 0o640))

	require.NoError(t, s.Delete(ctx, entity.AreaResized, name))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
