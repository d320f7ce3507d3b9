// Package phase implements the core.PhaseFunction variants used by
// participating media (spec.md §4.3).
package phase

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// HenyeyGreenstein is the single-parameter phase function used throughout
// spec.md §4.3 and §4.4, grounded directly on
// original_source/src/phase.cpp's HenyeyGreenstein::p and ::sample. g is
// the asymmetry parameter in (-1, 1): negative favors back-scattering,
// positive favors forward-scattering, zero is isotropic.
type HenyeyGreenstein struct {
	G float64
}

// NewHenyeyGreenstein creates a Henyey-Greenstein phase function with
// asymmetry g.
func NewHenyeyGreenstein(g float64) *HenyeyGreenstein {
	return &HenyeyGreenstein{G: g}
}

// P evaluates the phase function for the pair (wo, wi), both unit vectors
// pointing away from the scattering point. The original convention uses
// cos(theta) = dot(wo, wi) directly (no sign flip), matching dirt's
// phase.cpp.
func (hg *HenyeyGreenstein) P(wo, wi core.Vec3) float64 {
	return hgPhase(wo.Dot(wi), hg.G)
}

func hgPhase(cosTheta, g float64) float64 {
	denom := 1 + g*g + 2*g*cosTheta
	return (1 - g*g) / (4 * math.Pi * denom * math.Sqrt(math.Max(denom, 1e-12)))
}

// Sample draws a direction wi from the phase function about wo, returning
// its pdf (equal to P(wo, wi): Henyey-Greenstein sampling is exact). The
// isotropic special case (|g| < 1e-3) avoids a near-zero-divide in the
// general inversion formula.
func (hg *HenyeyGreenstein) Sample(wo core.Vec3, u core.Vec2) (wi core.Vec3, pdf float64) {
	var cosTheta float64
	g := hg.G
	if math.Abs(g) < 1e-3 {
		cosTheta = 1 - 2*u.X
	} else {
		sqrTerm := (1 - g*g) / (1 + g - 2*g*u.X)
		cosTheta = -(1 + g*g - sqrTerm*sqrTerm) / (2 * g)
	}

	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u.Y

	basis := core.NewONBFromW(wo)
	local := core.Vec3{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
	wi = basis.ToWorld(local)

	return wi, hgPhase(cosTheta, g)
}
