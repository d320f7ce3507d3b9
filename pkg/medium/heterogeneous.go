package medium

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// DensityField evaluates a non-negative density multiplier at a
// world-space point; Heterogeneous scales it by SigmaT to get a local
// extinction coefficient. Satisfied by pkg/noise.PerlinDensityField.
type DensityField interface {
	Density(p core.Vec3) float64
}

// maxTrackingSteps caps the ratio/delta-tracking loops defensively
// (spec.md §7's "implementations should cap loop iterations defensively
// and log a diagnostic"), matching pkg/integrator/trl.go's maxTrLSteps
// pattern. A ray whose Maxt is core.Infinity (no surface hit ahead)
// would otherwise step forever.
const maxTrackingSteps = 10000

// Heterogeneous is a participating medium whose extinction varies
// spatially, sampled via delta tracking (Sample) and ratio tracking (Tr).
// Grounded on original_source/src/medium.cpp's PerlinMedium, generalized
// over DensityField so any spatial density source can drive it.
type Heterogeneous struct {
	SigmaA, SigmaS, SigmaT float64
	InvMaxDensity          float64
	Field                  DensityField
	phase                  core.PhaseFunction
	Logger                 core.Logger
}

// NewHeterogeneous builds a Heterogeneous medium. maxDensity is the
// field's maximum value of Density(p) (the majorant used for delta/ratio
// tracking); it must be > 0.
func NewHeterogeneous(sigmaA, sigmaS, maxDensity float64, field DensityField, phase core.PhaseFunction) *Heterogeneous {
	sigmaT := sigmaA + sigmaS
	return &Heterogeneous{
		SigmaA:        sigmaA,
		SigmaS:        sigmaS,
		SigmaT:        sigmaT,
		InvMaxDensity: 1.0 / (sigmaT * maxDensity),
		Field:         field,
		phase:         phase,
	}
}

func (h *Heterogeneous) density(p core.Vec3) float64 {
	return h.SigmaT * math.Max(0, h.Field.Density(p))
}

// Tr estimates transmittance via ratio tracking: repeatedly step by an
// exponentially-distributed distance under the majorant and multiply by
// the local "surviving" probability, until stepping past ray.Maxt or the
// running transmittance falls below core.Epsilon.
func (h *Heterogeneous) Tr(ray core.Ray, sampler core.Sampler) float64 {
	ray = ray.Normalized()
	tr := 1.0
	t := ray.Mint
	for step := 0; step < maxTrackingSteps; step++ {
		t -= math.Log(1-sampler.Next1D()) * h.InvMaxDensity
		if t >= ray.Maxt {
			return tr
		}
		tr *= 1.0 - math.Max(0, h.density(ray.At(t))*h.InvMaxDensity)
		if tr < core.Epsilon {
			return 0
		}
	}
	if h.Logger != nil {
		h.Logger.Warnf("Heterogeneous.Tr exceeded %d steps, terminating", maxTrackingSteps)
	}
	return 0
}

// Sample draws a medium interaction via delta tracking: step under the
// majorant and accept each candidate with probability density/majorant.
func (h *Heterogeneous) Sample(ray core.Ray, sampler core.Sampler) (float64, core.MediumInteraction) {
	ray = ray.Normalized()
	t := ray.Mint
	for step := 0; step < maxTrackingSteps; step++ {
		t -= math.Log(1-sampler.Next1D()) * h.InvMaxDensity
		if t >= ray.Maxt {
			return 1.0, core.MediumInteraction{}
		}
		if sampler.Next1D() < h.density(ray.At(t))*h.InvMaxDensity {
			mi := core.MediumInteraction{
				P:      ray.At(t),
				Wo:     ray.Direction.Negate(),
				Medium: h,
			}
			return h.SigmaS / h.SigmaT, mi
		}
	}
	if h.Logger != nil {
		h.Logger.Warnf("Heterogeneous.Sample exceeded %d steps, terminating", maxTrackingSteps)
	}
	return 1.0, core.MediumInteraction{}
}

// Phase returns the medium's phase function.
func (h *Heterogeneous) Phase() core.PhaseFunction { return h.phase }
