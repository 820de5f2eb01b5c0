package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmineEl59/ProjetRayTracer/pkg/config"
	"github.com/AmineEl59/ProjetRayTracer/web/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	scenesDir := flag.String("scenes", "", "directory of scene files (overrides config)")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, level, err := loadConfig(*configPath, *addr, *scenesDir)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msgf("Raytracer web server, visit http://localhost%s", cfg.Server.Addr)
	if err := server.NewServer(cfg).Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// loadConfig reads the config file, a missing file falls back to the defaults.
// Non-empty addr and scenesDir override the file.
func loadConfig(path, addr, scenesDir string) (*config.Config, zerolog.Level, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, zerolog.NoLevel, err
		}
		log.Warn().Str("path", path).Msg("config not found; using defaults")
		cfg = config.Default()
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if scenesDir != "" {
		cfg.Server.ScenesDir = scenesDir
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, zerolog.NoLevel, err
	}
	return cfg, level, nil
}
