// Package imageproc holds the resize capabilities: a primary Lanczos resizer
// built on disintegration/imaging and a fallback Catmull-Rom scaler built on
// golang.org/x/image/draw. Both force the exact target size.
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	// webp sources decode through image.Decode and imaging.Decode alike
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
	"github.com/marcos-nsantos/pixforge/internal/domain/valueobject"
)

const DefaultJPEGQuality = 85

// outputType maps a source media type to the type the resized image is encoded
// as. There is no pure-Go webp encoder, so webp and unknown sources become png.
func outputType(mediaType string) string {
	if mediaType == entity.MediaTypeJPEG {
		return entity.MediaTypeJPEG
	}
	return entity.MediaTypePNG
}

func encode(img image.Image, mediaType string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	out := outputType(mediaType)

	switch out {
	case entity.MediaTypeJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", fmt.Errorf("encoding jpeg: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encoding png: %w", err)
		}
	}

	return buf.Bytes(), out, nil
}

// Inspector reads the format and size from an image header without decoding
// pixel data.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect reports the sniffed media type as "image/<format>", so formats
// outside the allow-list (gif, bmp, tiff) still come back recognisable.
func (Inspector) Inspect(data []byte) (valueobject.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return valueobject.ImageInfo{}, fmt.Errorf("decoding image config: %w", err)
	}
	return valueobject.ImageInfo{
		MediaType:  "image/" + format,
		Dimensions: valueobject.NewDimensions(cfg.Width, cfg.Height),
	}, nil
}
