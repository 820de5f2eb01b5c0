package imgcompare

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCountDifferentPixels(t *testing.T) {
	gray := color.RGBA{100, 100, 100, 255}

	a := solid(4, 3, gray)
	b := solid(4, 3, gray)
	b.SetRGBA(1, 1, color.RGBA{100, 101, 100, 255})
	b.SetRGBA(3, 2, color.RGBA{0, 0, 0, 255})

	count, err := CountDifferentPixels(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = CountDifferentPixels(a, a)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCountDifferentPixels_IgnoresOrigin(t *testing.T) {
	a := solid(2, 2, color.RGBA{10, 20, 30, 255})
	b := solid(6, 6, color.RGBA{10, 20, 30, 255}).SubImage(image.Rect(3, 3, 5, 5))

	count, err := CountDifferentPixels(a, b)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSizeMismatch(t *testing.T) {
	a := solid(2, 2, color.RGBA{A: 255})
	b := solid(3, 2, color.RGBA{A: 255})

	_, err := CountDifferentPixels(a, b)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = DiffImage(a, b)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestAreIdentical(t *testing.T) {
	tests := []struct {
		diff     int
		expected bool
	}{
		{0, true},
		{999, true},
		{1000, false},
		{50000, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, AreIdentical(tt.diff), "diff=%d", tt.diff)
	}
}

func TestDiffImage(t *testing.T) {
	a := solid(2, 1, color.RGBA{200, 50, 10, 255})
	b := solid(2, 1, color.RGBA{200, 50, 10, 255})
	b.SetRGBA(1, 0, color.RGBA{100, 80, 10, 255})

	diff, err := DiffImage(a, b)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, diff.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{100, 30, 0, 255}, diff.RGBAAt(1, 0))
}
