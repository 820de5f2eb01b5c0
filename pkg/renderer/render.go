package renderer

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTileSize is the tile edge length used when none is configured
const DefaultTileSize = 32

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int            // Size of each tile in pixels
	NumWorkers int            // Number of parallel workers (0 = use CPU count)
	Logger     zerolog.Logger // Progress output, zero value discards
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
		Logger:     zerolog.Nop(),
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int             // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds in the final image
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Completion order (1-based)
	TotalTiles int // Total number of tiles in the image
}

var errPoolClosed = errors.New("worker pool closed unexpectedly")

// Render renders the whole image on a worker pool. onTile, if set, is called once per finished
// tile from the calling goroutine. Cancelling ctx stops the render and returns ctx.Err().
func Render(ctx context.Context, rt *Raytracer, cfg RenderConfig, onTile func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}
	logger := cfg.Logger

	width, height := rt.Width(), rt.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, cfg.TileSize)

	pool := NewWorkerPool(rt, len(tiles), cfg.NumWorkers)
	pool.Start(ctx)
	defer pool.Stop()

	stats := RenderStats{
		TotalTiles: len(tiles),
		NumWorkers: pool.GetNumWorkers(),
		MaxDepth:   rt.MaxDepth(),
	}

	logger.Info().
		Int("width", width).
		Int("height", height).
		Int("tiles", len(tiles)).
		Int("workers", stats.NumWorkers).
		Int("max_depth", stats.MaxDepth).
		Msg("render started")

	startTime := time.Now()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, stats, errPoolClosed
		}
		if result.Error != nil {
			logger.Warn().Err(result.Error).Int("completed", i).Msg("render aborted")
			return nil, stats, result.Error
		}
		stats.TotalPixels += result.Pixels

		tile := tiles[result.TaskID]
		logger.Debug().
			Int("tile", tile.ID).
			Int("done", i+1).
			Int("total", len(tiles)).
			Msg("tile rendered")

		if onTile != nil {
			onTile(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / cfg.TileSize,
				TileY:      tile.Bounds.Min.Y / cfg.TileSize,
				Bounds:     tile.Bounds,
				TileImage:  extractTileImage(img, tile.Bounds),
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}

	stats.Elapsed = time.Since(startTime)
	logger.Info().
		Dur("elapsed", stats.Elapsed).
		Float64("pixels_per_sec", stats.PixelsPerSecond()).
		Msg("render finished")

	return img, stats, nil
}

// RenderSequential renders the image row by row on the calling goroutine
func RenderSequential(rt *Raytracer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.Width(), rt.Height()))
	rt.RenderBounds(img.Bounds(), img)
	return img
}
