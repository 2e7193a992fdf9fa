package imageproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// ScaleResizer is the fallback resizer. It shares no decoding or resampling
// code with LanczosResizer.
type ScaleResizer struct {
	quality int
}

func NewScaleResizer(quality int) *ScaleResizer {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	return &ScaleResizer{quality: quality}
}

func (r *ScaleResizer) Resize(ctx context.Context, data []byte, mediaType string, width, height int) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	return encode(dst, mediaType, r.quality)
}
