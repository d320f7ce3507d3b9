package renderer

import (
	"context"
	"image"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/integrator"
)

// SamplerFactory builds a fresh per-worker sampler so tiles never share
// PRNG state across goroutines (spec.md §4.1, §4.9).
type SamplerFactory func(seed int64) core.Sampler

// Config bundles the fixed parameters of a render pass (spec.md §4.9:
// a fixed sample count per pixel, no adaptive stopping).
type Config struct {
	Scene           core.Scene
	Integrator      integrator.Integrator
	Width, Height   int
	SamplesPerPixel int
	TileSize        int
	NumWorkers      int
	NewSampler      SamplerFactory
	Logger          core.Logger
	ShowProgress    bool
}

// Render drives the tile-based worker pool to a completed Image. Adapted
// from the teacher's worker_pool.go (tile queue drained by a fixed set of
// goroutines writing disjoint bounds), with the channel+WaitGroup plumbing
// replaced by golang.org/x/sync/errgroup and progress reporting via
// github.com/cheggaaa/pb/v3.
func Render(ctx context.Context, cfg Config) (*Image, error) {
	img := NewImage(cfg.Width, cfg.Height)

	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 32
	}
	tiles := splitTiles(img.Width, img.Height, tileSize)

	var bar *pb.ProgressBar
	if cfg.ShowProgress {
		bar = pb.StartNew(len(tiles))
	}

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = len(tiles)
	}
	sem := make(chan struct{}, numWorkers)

	g, gctx := errgroup.WithContext(ctx)

	for i, tile := range tiles {
		tile := tile
		seed := int64(i + 1)
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sampler := cfg.NewSampler(seed)
			renderTile(cfg.Scene, cfg.Integrator, sampler, cfg.SamplesPerPixel, tile.Bounds, img, cfg.Logger)

			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	err := g.Wait()
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// renderTile fills every pixel within bounds, averaging SamplesPerPixel
// independent Li estimates per pixel. Bounds never overlap between tiles,
// so writes to img need no synchronization (see Image.Set).
func renderTile(scene core.Scene, integ integrator.Integrator, sampler core.Sampler, samplesPerPixel int, bounds image.Rectangle, img *Image, logger core.Logger) {
	cam := scene.Camera()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sampler.StartPixel(x, y)

			sum := core.Vec3{}
			for s := 0; s < samplesPerPixel; s++ {
				px := float64(x) + sampler.Next2D().X
				py := float64(y) + sampler.Next2D().Y
				ray := cam.GenerateRay(px, py, sampler.Next2D())
				sum = sum.Add(integ.Li(ray, sampler, logger))
				sampler.StartNextSample()
			}

			img.Set(x, y, sum.Multiply(1.0/float64(samplesPerPixel)))
		}
	}
}
