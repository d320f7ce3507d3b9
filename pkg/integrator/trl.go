// Package integrator implements the two volumetric path-tracing
// estimators (spec.md §4.6, §4.7) and the transmittance-aware light
// connector they share (spec.md §4.5).
package integrator

import (
	"github.com/nragsdale/voltrace/pkg/core"
)

// maxTrLSteps caps the light-walk loop defensively (spec.md §7's
// "implementations should cap loop iterations defensively and log a
// diagnostic"); in practice the loop exits in one or two surface hits.
const maxTrLSteps = 10000

// TrL walks a ray through nested media and null-material (boundary-only)
// surfaces to find the first emitter, accumulating transmittance along
// the way. This is the "mature" variant described in spec.md §9 Open
// Questions: ray.maxt is clipped to each hit distance, the ray
// origin is advanced to ray(hit.t + epsilon), and medium transitions are
// applied before the origin advances. Grounded directly on
// original_source/src/medium.cpp's TrL.
func TrL(scene core.Scene, ray core.Ray, sampler core.Sampler, logger core.Logger) core.Vec3 {
	ray.Maxt = core.Infinity
	tr := 1.0

	for step := 0; step < maxTrLSteps; step++ {
		hit, hitSurface := scene.Intersect(ray)
		if hitSurface {
			ray.Maxt = hit.T
		}

		if ray.Medium != nil {
			tr *= ray.Medium.Tr(ray, sampler)
		}

		if hit.Material != nil {
			if hit.Material.IsEmissive() {
				return hit.Material.Emitted(ray, hit).Multiply(tr)
			}
			return core.Vec3{}
		}

		if tr < core.Epsilon {
			return core.Vec3{}
		}

		if !hitSurface {
			return scene.Background().Emitted(ray).Multiply(tr)
		}

		if hit.MI != nil && hit.MI.IsMediumTransition() {
			ray.Medium = hit.MI.GetMedium(hit, ray.Direction)
		}

		ray = core.NewRay(ray.At(hit.T+core.Epsilon), ray.Direction).WithMedium(ray.Medium)
	}

	if logger != nil {
		logger.Warnf("TrL exceeded %d steps, terminating", maxTrLSteps)
	}
	return core.Vec3{}
}
