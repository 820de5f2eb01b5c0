package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmineEl59/ProjetRayTracer/pkg/config"
	"github.com/AmineEl59/ProjetRayTracer/pkg/imgcompare"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
	"github.com/AmineEl59/ProjetRayTracer/pkg/loaders"
	"github.com/AmineEl59/ProjetRayTracer/pkg/renderer"
)

const defaultScenePath = "scenes/final.scene"

var errCompareArgs = errors.New("-compare expects two comma separated image paths")

// options holds the command line. Zero values mean "use the config file".
type options struct {
	configPath string
	out        string
	workers    int
	tileSize   int
	depth      int
	logLevel   string
	compare    string
	diff       string
	scenePath  string
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("raytracer failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	if opts.compare != "" {
		return runCompare(opts, stdout)
	}
	return runRender(ctx, opts, cfg, stdout)
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: raytracer [options] [scene-file]")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output())
		fmt.Fprintf(fs.Output(), "Renders %s when no scene file is given.\n", defaultScenePath)
	}

	fs.StringVar(&opts.configPath, "config", "config.yaml", "path to config.yaml")
	fs.StringVar(&opts.out, "out", "", "output image path (overrides the scene's output command)")
	fs.IntVar(&opts.workers, "workers", 0, "number of render workers (0 = config or CPU count)")
	fs.IntVar(&opts.tileSize, "tile", 0, "tile size in pixels (0 = config value)")
	fs.IntVar(&opts.depth, "depth", 0, "override the scene's maxdepth (0 = keep)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&opts.compare, "compare", "", "compare two images: a.png,b.png")
	fs.StringVar(&opts.diff, "diff", "", "write a difference image when comparing")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
		opts.scenePath = defaultScenePath
	case 1:
		opts.scenePath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one scene file, got %d", fs.NArg())
	}
	if opts.workers < 0 || opts.tileSize < 0 || opts.depth < 0 {
		return nil, errors.New("-workers, -tile and -depth must not be negative")
	}
	return opts, nil
}

// loadConfig reads the config file, a missing file falls back to the defaults.
// Flags set on the command line take precedence.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Debug().Str("path", opts.configPath).Msg("no config file, using defaults")
		cfg = config.Default()
	}

	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.tileSize > 0 {
		cfg.TileSize = opts.tileSize
	}
	if opts.depth > 0 {
		cfg.MaxDepthOverride = opts.depth
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(ctx context.Context, opts *options, cfg *config.Config, stdout io.Writer) error {
	s, err := loaders.LoadScene(opts.scenePath)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.scenePath, err)
	}

	rt := renderer.NewRaytracer(s)
	if cfg.MaxDepthOverride > 0 {
		rt.SetMaxDepth(cfg.MaxDepthOverride)
	}

	log.Info().
		Str("scene", opts.scenePath).
		Int("primitives", s.GetPrimitiveCount()).
		Interface("shapes", s.CountByKind()).
		Int("lights", len(s.Lights)).
		Msg("scene loaded")
	for _, light := range s.Lights {
		log.Debug().Str("light", lights.Describe(light)).Msg("scene light")
	}

	img, stats, err := renderer.Render(ctx, rt, renderer.RenderConfig{
		TileSize:   cfg.TileSize,
		NumWorkers: cfg.Workers,
		Logger:     log.Logger,
	}, nil)
	if err != nil {
		return err
	}

	filename := outputPath(opts.out, cfg.OutputDir, s.Output)
	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render completed in %v (%d workers, average luminance %.3f)\n",
		stats.Elapsed.Round(time.Millisecond), stats.NumWorkers, renderer.CalculateAverageLuminance(img))
	fmt.Fprintf(stdout, "Render saved as %s\n", filename)
	return nil
}

// outputPath picks the -out flag first, otherwise the scene's output inside outputDir
func outputPath(out, outputDir, sceneOutput string) string {
	if out != "" {
		return out
	}
	if filepath.IsAbs(sceneOutput) || outputDir == "" {
		return sceneOutput
	}
	return filepath.Join(outputDir, sceneOutput)
}

func runCompare(opts *options, stdout io.Writer) error {
	paths := strings.Split(opts.compare, ",")
	if len(paths) != 2 || paths[0] == "" || paths[1] == "" {
		return errCompareArgs
	}

	a, err := loaders.LoadImage(strings.TrimSpace(paths[0]))
	if err != nil {
		return err
	}
	b, err := loaders.LoadImage(strings.TrimSpace(paths[1]))
	if err != nil {
		return err
	}

	diff, err := imgcompare.CountDifferentPixels(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Different pixels: %d\n", diff)
	fmt.Fprintf(stdout, "Identical: %t\n", imgcompare.AreIdentical(diff))

	if opts.diff != "" {
		diffImg, err := imgcompare.DiffImage(a, b)
		if err != nil {
			return err
		}
		if err := loaders.SavePNG(opts.diff, diffImg); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Difference image saved as %s\n", opts.diff)
	}
	return nil
}
