package valueobject

type Dimensions struct {
	Width  int
	Height int
}

func NewDimensions(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height}
}

func (d Dimensions) IsValid() bool {
	return d.Width > 0 && d.Height > 0
}

// ScalePercent scales both sides by pct/100, rounding half up and never going below 1px.
func (d Dimensions) ScalePercent(pct int) Dimensions {
	return Dimensions{
		Width:  scale(d.Width, pct),
		Height: scale(d.Height, pct),
	}
}

func scale(side, pct int) int {
	v := (side*pct + 50) / 100
	if v < 1 {
		return 1
	}
	return v
}

func (d Dimensions) Pixels() int64 {
	return int64(d.Width) * int64(d.Height)
}

// ImageInfo is what an image header tells without decoding pixel data.
type ImageInfo struct {
	MediaType string
	Dimensions
}
