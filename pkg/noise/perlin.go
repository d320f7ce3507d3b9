// Package noise provides spatial density fields for heterogeneous media
// (spec.md §4.4), implemented over github.com/aquilax/go-perlin rather than
// a hand-rolled noise function (the dependency surveyed in
// _examples/other_examples/manifests/nicolasmd87-gopher3D/go.mod).
package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/nragsdale/voltrace/pkg/core"
)

// PerlinDensityField is a spatially-varying density source for
// medium.Heterogeneous, grounded on original_source/src/medium.cpp's
// PerlinMedium::density: a per-axis spatial scale, a density scale and
// offset, clamped non-negative.
type PerlinDensityField struct {
	p                          *perlin.Perlin
	SpatialScale               core.Vec3
	DensityScale, DensityOffset float64
}

// NewPerlinDensityField builds a density field. alpha/beta/n are the
// go-perlin fractal parameters (persistence, frequency multiplier, octave
// count); seed selects the noise pattern.
func NewPerlinDensityField(alpha, beta float64, n int32, seed int64, spatialScale core.Vec3, densityScale, densityOffset float64) *PerlinDensityField {
	return &PerlinDensityField{
		p:             perlin.NewPerlin(alpha, beta, n, seed),
		SpatialScale:  spatialScale,
		DensityScale:  densityScale,
		DensityOffset: densityOffset,
	}
}

// Density implements medium.DensityField.
func (f *PerlinDensityField) Density(p core.Vec3) float64 {
	scaled := p.MultiplyVec(f.SpatialScale)
	n := f.p.Noise3D(scaled.X, scaled.Y, scaled.Z)
	d := f.DensityScale*n + f.DensityOffset
	if d < 0 {
		return 0
	}
	return d
}

// MaxDensity bounds Density from above for the delta/ratio-tracking
// majorant: go-perlin's noise lies in roughly [-1, 1], so the scale and
// offset bound the field directly.
func (f *PerlinDensityField) MaxDensity() float64 {
	max := f.DensityScale + f.DensityOffset
	if max < 0 {
		max = -max
	}
	return max
}
