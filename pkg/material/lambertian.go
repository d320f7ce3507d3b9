package material

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Lambertian is a perfectly diffuse material (spec.md §4.2). Adapted from
// the teacher's pkg/material/lambertian.go, generalized to a texture
// function so albedo can vary spatially.
type Lambertian struct {
	Albedo ColorTexture
}

// NewLambertian creates a Lambertian material with a constant albedo.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: Constant(albedo)}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	direction := core.RandomCosineDirection(hit.Sn, sampler.Next2D())
	return core.ScatterRecord{
		Attenuation: l.Albedo(hit),
		Scattered:   direction,
		IsSpecular:  false,
	}, true
}

func (l *Lambertian) Eval(wo, wi core.Vec3, hit core.HitInfo) core.Vec3 {
	cosTheta := wi.Dot(hit.Sn)
	if cosTheta <= 0 {
		return core.Vec3{}
	}
	return l.Albedo(hit).Multiply(1.0 / math.Pi)
}

func (l *Lambertian) PDF(wo, wi core.Vec3, hit core.HitInfo) float64 {
	cosTheta := wi.Normalize().Dot(hit.Sn)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

func (l *Lambertian) Emitted(core.Ray, core.HitInfo) core.Vec3 { return core.Vec3{} }
func (l *Lambertian) IsEmissive() bool                         { return false }
