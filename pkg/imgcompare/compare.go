// Package imgcompare compares rendered images against reference images.
package imgcompare

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// IdenticalThreshold is the number of differing pixels from which two images count as different
const IdenticalThreshold = 1000

var ErrSizeMismatch = errors.New("images do not have the same size")

func checkSize(a, b image.Image) error {
	if a.Bounds().Size() != b.Bounds().Size() {
		return fmt.Errorf("%w: %v vs %v", ErrSizeMismatch, a.Bounds().Size(), b.Bounds().Size())
	}
	return nil
}

// rgbAt reads a pixel as 8-bit RGB, ignoring alpha, relative to the image origin
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	origin := img.Bounds().Min
	c := color.RGBAModel.Convert(img.At(origin.X+x, origin.Y+y)).(color.RGBA)
	return c.R, c.G, c.B
}

// CountDifferentPixels returns how many pixels differ in any RGB channel
func CountDifferentPixels(a, b image.Image) (int, error) {
	if err := checkSize(a, b); err != nil {
		return 0, err
	}

	size := a.Bounds().Size()
	diffCount := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r1, g1, b1 := rgbAt(a, x, y)
			r2, g2, b2 := rgbAt(b, x, y)
			if r1 != r2 || g1 != g2 || b1 != b2 {
				diffCount++
			}
		}
	}
	return diffCount, nil
}

// AreIdentical reports whether a difference count is small enough to treat two images as the same
func AreIdentical(diffCount int) bool {
	return diffCount < IdenticalThreshold
}

// DiffImage returns an image that is black where a and b agree and holds the
// per-channel absolute difference elsewhere
func DiffImage(a, b image.Image) (*image.RGBA, error) {
	if err := checkSize(a, b); err != nil {
		return nil, err
	}

	size := a.Bounds().Size()
	diff := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r1, g1, b1 := rgbAt(a, x, y)
			r2, g2, b2 := rgbAt(b, x, y)
			diff.SetRGBA(x, y, color.RGBA{
				R: absDiff(r1, r2),
				G: absDiff(g1, g2),
				B: absDiff(b1, b2),
				A: 255,
			})
		}
	}
	return diff, nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
