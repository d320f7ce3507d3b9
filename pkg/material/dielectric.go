package material

import (
	"github.com/nragsdale/voltrace/pkg/core"
)

// Dielectric is a smooth, Fresnel-weighted reflect/refract material
// (spec.md §4.2). Adapted from original_source/src/material.cpp's
// Dielectric::scatter, which averages the parallel and perpendicular
// Fresnel terms directly rather than using Schlick's approximation.
type Dielectric struct {
	IOR float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	// The normal is flipped and eta1/eta2 inverted when the ray is
	// leaving the medium it refracts into (dot(ray.d, sn) > 0).
	normal := hit.Sn
	eta1, eta2 := 1.0, d.IOR
	if rayIn.Direction.Dot(hit.Sn) > 0 {
		normal = hit.Sn.Negate()
		eta1, eta2 = d.IOR, 1.0
	}

	unitDir := rayIn.Direction.Normalize()
	reflected := core.Reflect(unitDir, hit.Sn)

	cosTheta1 := unitDir.Negate().Dot(normal)
	refracted, didRefract := core.Refract(unitDir, normal, eta1/eta2)
	if !didRefract {
		// Total internal reflection: the refraction routine reporting
		// failure is how TIR is signalled (spec.md §4.2).
		return core.ScatterRecord{Attenuation: core.NewVec3(1, 1, 1), Scattered: reflected, IsSpecular: true}, true
	}

	cosTheta2 := refracted.Negate().Dot(normal.Negate())
	rhoParallel := (eta2*cosTheta1 - eta1*cosTheta2) / (eta2*cosTheta1 + eta1*cosTheta2)
	rhoPerp := (eta1*cosTheta1 - eta2*cosTheta2) / (eta1*cosTheta1 + eta2*cosTheta2)
	reflectance := 0.5 * (rhoParallel*rhoParallel + rhoPerp*rhoPerp)

	direction := refracted
	if sampler.Next1D() < reflectance {
		direction = reflected
	}

	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   direction.Normalize(),
		IsSpecular:  true,
	}, true
}

func (d *Dielectric) Eval(wo, wi core.Vec3, hit core.HitInfo) core.Vec3 { return core.Vec3{} }
func (d *Dielectric) PDF(wo, wi core.Vec3, hit core.HitInfo) float64    { return 0 }
func (d *Dielectric) Emitted(core.Ray, core.HitInfo) core.Vec3         { return core.Vec3{} }
func (d *Dielectric) IsEmissive() bool                                 { return false }
