package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
)

// LoadImage loads a PNG or JPEG image
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, nil
}

// SavePNG writes img to filename, creating parent directories as needed
func SavePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}
