package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nragsdale/voltrace/pkg/logging"
	"github.com/nragsdale/voltrace/pkg/renderer"
)

const tinyScene = `{
  "camera": {
    "transform": {"center": [0, 0, 3], "at": [0, 0, 0], "up": [0, 1, 0]},
    "resolution": [4, 3],
    "vfov": 40,
    "fdist": 3,
    "aperture": 0
  },
  "sampler": {"type": "independent", "samples_per_pixel": 2},
  "background": [0.2, 0.2, 0.2],
  "materials": [{"name": "m", "type": "lambertian", "albedo": [0.5, 0.5, 0.5]}],
  "surfaces": [{"type": "sphere", "center": [0, 0, 0], "radius": 1, "material": "m"}]
}`

func TestRunRendersSceneToPNG(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(scenePath, []byte(tinyScene), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.png")

	cfg := config{ScenePath: scenePath, OutputPath: outPath, TileSize: 2, Quiet: true}
	if err := run(cfg, logging.Nop()); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if info, err := os.Stat(outPath); err != nil || info.Size() == 0 {
		t.Errorf("expected a non-empty PNG at %s", outPath)
	}
}

func TestRunRequiresSceneFlag(t *testing.T) {
	if err := run(config{}, logging.Nop()); err == nil {
		t.Error("expected an error when -scene is missing")
	}
}

func TestRunRejectsMissingSceneFile(t *testing.T) {
	cfg := config{ScenePath: "/nonexistent/scene.json", OutputPath: "out.png"}
	if err := run(cfg, logging.Nop()); err == nil {
		t.Error("expected an error for a missing scene file")
	}
}

func TestToByteClampsAndGammaCorrects(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"mid gray is gamma-encoded", 0.5, 186},
		{"below zero clamps to black", -1, 0},
		{"above one clamps to white", 2, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toByte(tt.in); got != tt.want {
				t.Errorf("toByte(%f) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestToRGBAPreservesDimensions(t *testing.T) {
	img := renderer.NewImage(5, 3)
	rgba := toRGBA(img)
	bounds := rgba.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 3 {
		t.Errorf("unexpected RGBA bounds: %v", bounds)
	}
}
