package renderer

import (
	"image"
	"image/draw"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds in image coordinates (top-left origin)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// RenderBounds renders the pixels of img within bounds. Image row y is engine row height-1-y,
// so the bottom of the view lands at the bottom of the image.
// Callers must give concurrent calls disjoint bounds.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) int {
	height := rt.Height()
	pixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, rt.ColorAt(x, row).ToRGBA())
			pixels++
		}
	}

	return pixels
}

// extractTileImage copies a tile out of the full image into its own zero-origin image
func extractTileImage(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(tileImage, tileImage.Bounds(), img, bounds.Min, draw.Src)
	return tileImage
}
