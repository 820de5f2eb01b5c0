package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalTiles  int           // Number of tiles the image was split into
	NumWorkers  int           // Workers that shared the tiles
	MaxDepth    int           // Recursion budget used for every pixel
	Elapsed     time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
		}
	}
	return total / float64(pixels)
}
