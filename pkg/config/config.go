package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Server struct {
	Addr      string `yaml:"addr"`       // e.g. :8080
	ScenesDir string `yaml:"scenes_dir"` // directory served by /api/scenes
}

type Config struct {
	Workers          int    `yaml:"workers"`   // 0 = one per CPU
	TileSize         int    `yaml:"tile_size"` // pixels per tile edge
	LogLevel         string `yaml:"log_level"` // zerolog level name
	OutputDir        string `yaml:"output_dir"`
	MaxDepthOverride int    `yaml:"max_depth_override,omitempty"` // 0 keeps the scene's maxdepth

	Server Server `yaml:"server"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Workers:   0,
		TileSize:  32,
		LogLevel:  "info",
		OutputDir: ".",
		Server: Server{
			Addr:      ":8080",
			ScenesDir: "scenes",
		},
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be > 0, got %d", ErrInvalid, c.TileSize)
	}
	if c.MaxDepthOverride < 0 {
		return fmt.Errorf("%w: max_depth_override must be >= 0, got %d", ErrInvalid, c.MaxDepthOverride)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level parses LogLevel, an empty value means info
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}
