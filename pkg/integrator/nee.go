package integrator

import (
	"github.com/nragsdale/voltrace/pkg/core"
)

// NEE is the next-event-estimation integrator with power-heuristic MIS
// between BSDF/phase samples and direct light samples (spec.md §4.7),
// grounded on original_source/include/dirt/volpath_tracer_nee.h.
type NEE struct {
	Scene      core.Scene
	MaxBounces int
	// MISPower is beta in the power heuristic; spec.md §4.7 default is 2.
	MISPower float64
}

// NewNEE builds an NEE+MIS integrator over scene.
func NewNEE(scene core.Scene, maxBounces int, misPower float64) *NEE {
	if misPower <= 0 {
		misPower = 2
	}
	return &NEE{Scene: scene, MaxBounces: maxBounces, MISPower: misPower}
}

// Li estimates the radiance arriving along the primary ray.
func (n *NEE) Li(ray core.Ray, sampler core.Sampler, logger core.Logger) core.Vec3 {
	// Primary-ray emission, via TrL clipped to the first intersection;
	// all subsequent emission is accounted for only by NEE below, so
	// material.Emitted is never added again on later bounces.
	throughput := core.NewVec3(1, 1, 1)
	result := TrL(n.Scene, ray, sampler, logger)
	bounces := 0

	for bounces <= n.MaxBounces {
		hit, hitSurface := n.Scene.Intersect(ray)
		if hitSurface {
			ray.Maxt = hit.T
		}

		if ray.Medium != nil {
			weight, mi := ray.Medium.Sample(ray, sampler)
			throughput = throughput.Multiply(weight)

			if mi.Valid() {
				phase := ray.Medium.Phase()
				emitters := n.Scene.Emitters()

				wiL, pdfL := emitters.Sample(mi.P, sampler.Next2D())
				if pdfL > 0 {
					pdfB := phase.P(mi.Wo, wiL)
					tr := TrL(n.Scene, core.NewRay(mi.P, wiL).WithMedium(ray.Medium), sampler, logger)
					w := core.PowerHeuristic(pdfL, pdfB, n.MISPower)
					result = result.Add(throughput.Multiply(pdfB * w / pdfL).MultiplyVec(tr))
				}

				wi, pdfPhase := phase.Sample(mi.Wo, sampler.Next2D())
				if pdfPhase <= 0 {
					break
				}
				pdfLForB := emitters.PDF(mi.P, wi)
				p := phase.P(mi.Wo, wi)
				tr := TrL(n.Scene, core.NewRay(mi.P, wi).WithMedium(ray.Medium), sampler, logger)
				w := core.PowerHeuristic(pdfPhase, pdfLForB, n.MISPower)
				result = result.Add(throughput.Multiply(p * w / pdfPhase).MultiplyVec(tr))

				throughput = throughput.Multiply(p / pdfPhase)
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
			break
		}

		if hit.Material == nil {
			if hit.MI != nil && hit.MI.IsMediumTransition() {
				ray.Medium = hit.MI.GetMedium(hit, ray.Direction)
			}
			ray = core.NewRay(ray.At(hit.T+core.Epsilon), ray.Direction).WithMedium(ray.Medium)
			continue
		}

		wo := ray.Direction.Negate()
		rec, scattered := hit.Material.Scatter(ray, hit, sampler)
		if !scattered {
			break
		}

		if rec.IsSpecular {
			throughput = throughput.MultiplyVec(rec.Attenuation)
			ray = core.NewRay(hit.P, rec.Scattered).WithMedium(ray.Medium)
			result = result.Add(throughput.MultiplyVec(TrL(n.Scene, ray, sampler, logger)))
			bounces++
		} else {
			emitters := n.Scene.Emitters()

			wiL, pdfL := emitters.Sample(hit.P, sampler.Next2D())
			if pdfL > 0 {
				pdfB := hit.Material.PDF(wo, wiL, hit)
				eval := hit.Material.Eval(wo, wiL, hit)
				if !eval.IsZero() {
					tr := TrL(n.Scene, core.NewRay(hit.P, wiL).WithMedium(ray.Medium), sampler, logger)
					w := core.PowerHeuristic(pdfL, pdfB, n.MISPower)
					result = result.Add(throughput.MultiplyVec(eval).MultiplyVec(tr).Multiply(w / pdfL))
				}
			}

			pdfB := hit.Material.PDF(wo, rec.Scattered, hit)
			if pdfB <= 0 {
				break
			}
			pdfLForB := emitters.PDF(hit.P, rec.Scattered)
			eval := hit.Material.Eval(wo, rec.Scattered, hit)
			tr := TrL(n.Scene, core.NewRay(hit.P, rec.Scattered).WithMedium(ray.Medium), sampler, logger)
			w := core.PowerHeuristic(pdfB, pdfLForB, n.MISPower)
			result = result.Add(throughput.MultiplyVec(eval).MultiplyVec(tr).Multiply(w / pdfB))

			throughput = throughput.MultiplyVec(eval).Multiply(1.0 / pdfB)
			ray = core.NewRay(hit.P, rec.Scattered).WithMedium(ray.Medium)
			bounces++
		}

		if terminate, comp := core.RussianRoulette(throughput, sampler.Next1D(), rrThreshold); terminate {
			break
		} else {
			throughput = throughput.Multiply(comp)
		}
	}

	return result
}
