package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/pixforge/internal/domain/valueobject"
)

func TestDimensions_ScalePercent(t *testing.T) {
	tests := []struct {
		name     string
		original valueobject.Dimensions
		pct      int
		want     valueobject.Dimensions
	}{
		{"half of 800x600", valueobject.NewDimensions(800, 600), 50, valueobject.NewDimensions(400, 300)},
		{"third of odd sides", valueobject.NewDimensions(801, 599), 33, valueobject.NewDimensions(264, 198)},
		{"full size", valueobject.NewDimensions(1024, 768), 100, valueobject.NewDimensions(1024, 768)},
		{"rounds half up", valueobject.NewDimensions(5, 15), 10, valueobject.NewDimensions(1, 2)},
		{"never below one pixel", valueobject.NewDimensions(3, 1), 10, valueobject.NewDimensions(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.original.ScalePercent(tt.pct))
		})
	}
}

func TestDimensions_IsValid(t *testing.T) {
	assert.True(t, valueobject.NewDimensions(1, 1).IsValid())
	assert.False(t, valueobject.NewDimensions(0, 10).IsValid())
	assert.False(t, valueobject.NewDimensions(10, -1).IsValid())
}

func TestDimensions_Pixels(t *testing.T) {
	assert.Equal(t, int64(480000), valueobject.NewDimensions(800, 600).Pixels())
	assert.Equal(t, int64(10_000_000_000), valueobject.NewDimensions(100000, 100000).Pixels())
}
