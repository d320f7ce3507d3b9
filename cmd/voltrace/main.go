// Command voltrace renders a JSON scene description (spec.md §6) to a PNG
// image. Flag handling follows the teacher's main.go style.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/nragsdale/voltrace/pkg/loaders"
	"github.com/nragsdale/voltrace/pkg/logging"
	"github.com/nragsdale/voltrace/pkg/renderer"
)

type config struct {
	ScenePath       string
	OutputPath      string
	SamplesOverride int
	Workers         int
	TileSize        int
	Quiet           bool
}

func main() {
	cfg := parseFlags()

	logger, err := logging.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Errorf("render failed: %v", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.ScenePath, "scene", "", "path to a JSON scene description (required)")
	flag.StringVar(&cfg.OutputPath, "out", "render.png", "output PNG path")
	flag.IntVar(&cfg.SamplesOverride, "samples", 0, "override samples per pixel (0 = use scene's sampler.samples_per_pixel)")
	flag.IntVar(&cfg.Workers, "workers", 0, "number of parallel tile workers (0 = one per tile)")
	flag.IntVar(&cfg.TileSize, "tile-size", 32, "tile edge length in pixels")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "suppress the progress bar")
	flag.Parse()
	return cfg
}

func run(cfg config, logger *logging.Zap) error {
	if cfg.ScenePath == "" {
		return fmt.Errorf("missing required -scene flag")
	}

	data, err := os.ReadFile(cfg.ScenePath)
	if err != nil {
		return fmt.Errorf("reading scene file: %w", err)
	}

	loaded, err := loaders.Load(data)
	if err != nil {
		return fmt.Errorf("parsing scene: %w", err)
	}

	samplesPerPixel := loaded.SamplesPerPixel
	if cfg.SamplesOverride > 0 {
		samplesPerPixel = cfg.SamplesOverride
	}

	start := time.Now()
	img, err := renderer.Render(context.Background(), renderer.Config{
		Scene:           loaded.Scene,
		Integrator:      loaded.Integrator,
		Width:           loaded.Width,
		Height:          loaded.Height,
		SamplesPerPixel: samplesPerPixel,
		TileSize:        cfg.TileSize,
		NumWorkers:      cfg.Workers,
		NewSampler:      loaded.Sampler,
		Logger:          logger,
		ShowProgress:    !cfg.Quiet,
	})
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Debugf("rendered %dx%d in %v", loaded.Width, loaded.Height, time.Since(start))

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, toRGBA(img)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	logger.Debugf("saved %s", cfg.OutputPath)
	return nil
}

// toRGBA tone-maps the linear-radiance framebuffer with a gamma-2.2
// encoding curve, the simplest mapping that keeps the output viewable
// (spec.md §6 notes downstream tone-mapping is out of scope for the core,
// but the CLI still needs something to write a displayable PNG).
func toRGBA(img *renderer.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.Set(x, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return out
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	gammaCorrected := math.Pow(v, 1.0/2.2)
	if gammaCorrected > 1 {
		gammaCorrected = 1
	}
	return uint8(gammaCorrected*255 + 0.5)
}
