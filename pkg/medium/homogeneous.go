// Package medium implements the core.Medium variants: homogeneous
// participating media with closed-form transmittance, and a heterogeneous
// medium whose density varies spatially via a core.DensityField (spec.md
// §4.4).
package medium

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Homogeneous is a participating medium with constant absorption and
// scattering coefficients, grounded directly on
// original_source/src/medium.cpp's HomogeneousMedium.
type Homogeneous struct {
	SigmaA, SigmaS, SigmaT float64
	phase                  core.PhaseFunction
}

// NewHomogeneous builds a Homogeneous medium from absorption/scattering
// coefficients and a phase function.
func NewHomogeneous(sigmaA, sigmaS float64, phase core.PhaseFunction) *Homogeneous {
	return &Homogeneous{SigmaA: sigmaA, SigmaS: sigmaS, SigmaT: sigmaA + sigmaS, phase: phase}
}

// Tr returns exp(-sigma_t * distance) over the ray's parametric extent.
// The ray is normalized first (Ray.Normalized) so that Maxt-Mint is a
// world-space distance.
func (h *Homogeneous) Tr(ray core.Ray, sampler core.Sampler) float64 {
	ray = ray.Normalized()
	return math.Exp(-h.SigmaT * (ray.Maxt - ray.Mint))
}

// Sample draws a free-flight distance from an exponential distribution
// with rate sigma_t. If the sampled distance falls within the ray's
// extent, it reports a medium interaction and returns sigma_s/sigma_t
// (the scattering albedo); otherwise it returns 1 (the ray passed
// through unscattered).
func (h *Homogeneous) Sample(ray core.Ray, sampler core.Sampler) (float64, core.MediumInteraction) {
	ray = ray.Normalized()
	dist := -math.Log(1-sampler.Next1D()) / h.SigmaT
	t := ray.Mint + dist
	if t >= ray.Maxt {
		return 1.0, core.MediumInteraction{}
	}
	mi := core.MediumInteraction{
		P:      ray.At(t),
		Wo:     ray.Direction.Negate(),
		Medium: h,
	}
	return h.SigmaS / h.SigmaT, mi
}

// Phase returns the medium's phase function.
func (h *Homogeneous) Phase() core.PhaseFunction { return h.phase }
