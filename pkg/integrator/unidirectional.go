package integrator

import (
	"github.com/nragsdale/voltrace/pkg/core"
)

// rrThreshold is the "mature" Russian-roulette constant from spec.md §9
// Open Questions (the source's other copies use 0.1; 1.0 is adopted).
const rrThreshold = 1.0

// Unidirectional is the recursive-turned-iterative volumetric path
// tracer (spec.md §4.6), grounded on
// original_source/include/dirt/volpath_tracer_uni.h.
type Unidirectional struct {
	Scene      core.Scene
	MaxBounces int
}

// NewUnidirectional builds a Unidirectional integrator over scene.
func NewUnidirectional(scene core.Scene, maxBounces int) *Unidirectional {
	return &Unidirectional{Scene: scene, MaxBounces: maxBounces}
}

// Li estimates the radiance arriving along the primary ray.
func (u *Unidirectional) Li(ray core.Ray, sampler core.Sampler, logger core.Logger) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	result := core.Vec3{}
	bounces := 0

	for bounces <= u.MaxBounces {
		hit, hitSurface := u.Scene.Intersect(ray)
		if hitSurface {
			ray.Maxt = hit.T
		}

		if ray.Medium != nil {
			weight, mi := ray.Medium.Sample(ray, sampler)
			throughput = throughput.Multiply(weight)

			if mi.Valid() {
				phase := ray.Medium.Phase()
				wi, pdf := phase.Sample(mi.Wo, sampler.Next2D())
				if pdf <= 0 {
					break
				}
				p := phase.P(mi.Wo, wi)
				throughput = throughput.Multiply(p / pdf)
				ray = core.NewRay(mi.P, wi).WithMedium(ray.Medium)
				bounces++

				if terminate, comp := core.RussianRoulette(throughput, sampler.Next1D(), rrThreshold); terminate {
					break
				} else {
					throughput = throughput.Multiply(comp)
				}
				continue
			}
		}

		if !hitSurface {
			result = result.Add(throughput.MultiplyVec(u.Scene.Background().Emitted(ray)))
			break
		}

		if hit.Material == nil {
			// Null-material boundary: pass straight through, switching
			// medium on transition, without spending a bounce.
			if hit.MI != nil && hit.MI.IsMediumTransition() {
				ray.Medium = hit.MI.GetMedium(hit, ray.Direction)
			}
			ray = core.NewRay(ray.At(hit.T+core.Epsilon), ray.Direction).WithMedium(ray.Medium)
			continue
		}

		result = result.Add(throughput.MultiplyVec(hit.Material.Emitted(ray, hit)))

		rec, scattered := hit.Material.Scatter(ray, hit, sampler)
		if !scattered {
			break
		}

		if rec.IsSpecular {
			throughput = throughput.MultiplyVec(rec.Attenuation)
		} else {
			pdf := hit.Material.PDF(ray.Direction.Negate(), rec.Scattered, hit)
			if pdf <= 0 {
				break
			}
			eval := hit.Material.Eval(ray.Direction.Negate(), rec.Scattered, hit)
			throughput = throughput.MultiplyVec(eval).Multiply(1.0 / pdf)
		}

		ray = core.NewRay(hit.P, rec.Scattered).WithMedium(ray.Medium)
		bounces++

		if terminate, comp := core.RussianRoulette(throughput, sampler.Next1D(), rrThreshold); terminate {
			break
		} else {
			throughput = throughput.Multiply(comp)
		}
	}

	return result
}
