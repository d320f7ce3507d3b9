// Package sampler implements core.Sampler (spec.md §4.1): "out of scope"
// for the core's algorithms, but a concrete sampler is needed to drive
// the integrators end to end. Grounded on the teacher's pervasive use of
// math/rand as its source of randomness (pkg/renderer/camera.go,
// pkg/material/*.go all take a *rand.Rand).
package sampler

import (
	"math/rand"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Independent draws uniform, uncorrelated samples: the simplest sampler
// satisfying the spec.md §4.1 contract, with no structure across a pixel.
type Independent struct {
	rng *rand.Rand
}

// NewIndependent creates an Independent sampler seeded from seed.
func NewIndependent(seed int64) *Independent {
	return &Independent{rng: rand.New(rand.NewSource(seed))}
}

func (s *Independent) Next1D() float64   { return s.rng.Float64() }
func (s *Independent) Next2D() core.Vec2 { return core.Vec2{X: s.rng.Float64(), Y: s.rng.Float64()} }

// StartPixel is a no-op: independent sampling has no per-pixel structure.
func (s *Independent) StartPixel(x, y int) {}

// StartNextSample is a no-op for the same reason.
func (s *Independent) StartNextSample() {}
