package imageproc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
)

// LanczosResizer is the primary resizer.
type LanczosResizer struct {
	quality int
}

func NewLanczosResizer(quality int) *LanczosResizer {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	return &LanczosResizer{quality: quality}
}

func (r *LanczosResizer) Resize(ctx context.Context, data []byte, mediaType string, width, height int) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	return encode(resized, mediaType, r.quality)
}
