package renderer

import (
	"context"
	"image"
	"testing"

	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/integrator"
	"github.com/nragsdale/voltrace/pkg/sampler"
)

func TestSplitTilesCoversWholeImageExactlyOnce(t *testing.T) {
	tiles := splitTiles(70, 50, 32)

	covered := make(map[[2]int]bool)
	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				key := [2]int{x, y}
				if covered[key] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[key] = true
			}
		}
	}
	if len(covered) != 70*50 {
		t.Errorf("covered %d pixels, want %d", len(covered), 70*50)
	}
}

func TestSplitTilesHandlesImageSmallerThanTile(t *testing.T) {
	tiles := splitTiles(10, 10, 32)
	if len(tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(tiles))
	}
	if tiles[0].Bounds != image.Rect(0, 0, 10, 10) {
		t.Errorf("unexpected bounds %v", tiles[0].Bounds)
	}
}

type flatLi struct{ color core.Vec3 }

func (f flatLi) Li(ray core.Ray, s core.Sampler, logger core.Logger) core.Vec3 { return f.color }

type flatCamera struct{}

func (flatCamera) GenerateRay(px, py float64, lens core.Vec2) core.Ray {
	return core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
}

type rendererTestScene struct{ cam core.Camera }

func (s rendererTestScene) Intersect(ray core.Ray) (core.HitInfo, bool) { return core.HitInfo{}, false }
func (s rendererTestScene) Background() core.Background                { return nil }
func (s rendererTestScene) Emitters() core.EmitterSet                  { return nil }
func (s rendererTestScene) Camera() core.Camera                        { return s.cam }

var _ integrator.Integrator = flatLi{}

func TestRenderFillsEveryPixelWithIntegratorOutput(t *testing.T) {
	want := core.NewVec3(0.25, 0.5, 0.75)
	cfg := Config{
		Scene:           rendererTestScene{cam: flatCamera{}},
		Integrator:      flatLi{color: want},
		Width:           9,
		Height:          7,
		SamplesPerPixel: 4,
		TileSize:        4,
		NumWorkers:      2,
		NewSampler:      func(seed int64) core.Sampler { return sampler.NewIndependent(seed) },
	}

	img, err := Render(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			got := img.At(x, y)
			if got.X != want.X || got.Y != want.Y || got.Z != want.Z {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		Scene:           rendererTestScene{cam: flatCamera{}},
		Integrator:      flatLi{color: core.Vec3{}},
		Width:           64,
		Height:          64,
		SamplesPerPixel: 1,
		TileSize:        8,
		NumWorkers:      1,
		NewSampler:      func(seed int64) core.Sampler { return sampler.NewIndependent(seed) },
	}

	if _, err := Render(ctx, cfg); err == nil {
		t.Error("expected an error from a pre-cancelled context, got nil")
	}
}
