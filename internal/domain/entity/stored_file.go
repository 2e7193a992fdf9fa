package entity

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Area is one of the two independent namespaces files are stored in.
type Area string

const (
	AreaUploads Area = "uploads"
	AreaResized Area = "resized"
)

func Areas() []Area {
	return []Area{AreaUploads, AreaResized}
}

func (a Area) IsValid() bool {
	return a == AreaUploads || a == AreaResized
}

const (
	MediaTypeJPEG   = "image/jpeg"
	MediaTypePNG    = "image/png"
	MediaTypeWebP   = "image/webp"
	MediaTypeBinary = "application/octet-stream"
)

var (
	validName = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9]+)?$`)
	validExt  = regexp.MustCompile(`^[a-z0-9]{1,8}$`)
)

// ValidName reports whether name is a flat storage key without path separators.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// StoredFile is an immutable blob held by a FileStorage. Persisting stores set
// Path; the pass-through store hands the payload back in Data instead.
type StoredFile struct {
	ID           uuid.UUID
	Name         string
	OriginalName string
	MediaType    string
	Area         Area
	Size         int64
	Path         string
	Data         []byte
	CreatedAt    time.Time
}

func NewStoredFile(area Area, originalName string, size int64) *StoredFile {
	id := uuid.New()
	name := id.String()
	if ext := Extension(originalName); validExt.MatchString(ext) {
		name += "." + ext
	}

	return &StoredFile{
		ID:           id,
		Name:         name,
		OriginalName: originalName,
		MediaType:    MediaTypeFromName(name),
		Area:         area,
		Size:         size,
		CreatedAt:    time.Now().UTC(),
	}
}

// PublicPath is the URL path the file is served under.
func PublicPath(area Area, name string) string {
	return "/" + string(area) + "/" + name
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.ToLower(ext)
}

func MediaTypeFromName(name string) string {
	switch Extension(name) {
	case "jpg", "jpeg":
		return MediaTypeJPEG
	case "png":
		return MediaTypePNG
	case "webp":
		return MediaTypeWebP
	default:
		return MediaTypeBinary
	}
}

// ExtensionForMediaType is the inverse of MediaTypeFromName for image types.
func ExtensionForMediaType(mediaType string) string {
	switch mediaType {
	case MediaTypeJPEG:
		return "jpg"
	case MediaTypePNG:
		return "png"
	case MediaTypeWebP:
		return "webp"
	default:
		return ""
	}
}

// FileAge is a listing entry used by the janitor.
type FileAge struct {
	Name string
	Age  time.Duration
}

type ResizeMode string

const (
	ResizeModeRatio      ResizeMode = "ratio"
	ResizeModePercentage ResizeMode = "percentage"
)

func (m ResizeMode) IsValid() bool {
	return m == ResizeModeRatio || m == ResizeModePercentage
}
