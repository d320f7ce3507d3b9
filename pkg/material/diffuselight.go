package material

import "github.com/nragsdale/voltrace/pkg/core"

// DiffuseLight is a one-sided area-emitter material (spec.md §4.2).
// Adapted from original_source/src/material.cpp's DiffuseLight::emitted,
// which only emits out of the geometric front face.
type DiffuseLight struct {
	Emit ColorTexture
}

// NewDiffuseLight creates a DiffuseLight with a constant radiance.
func NewDiffuseLight(radiance core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: Constant(radiance)}
}

func (d *DiffuseLight) Scatter(core.Ray, core.HitInfo, core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (d *DiffuseLight) Eval(wo, wi core.Vec3, hit core.HitInfo) core.Vec3 { return core.Vec3{} }
func (d *DiffuseLight) PDF(wo, wi core.Vec3, hit core.HitInfo) float64    { return 0 }

// Emitted returns the radiance only when the incoming ray strikes the
// front face (rayIn.Direction pointing into the surface, sn pointing out).
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitInfo) core.Vec3 {
	if rayIn.Direction.Dot(hit.Sn) >= 0 {
		return core.Vec3{}
	}
	return d.Emit(hit)
}

func (d *DiffuseLight) IsEmissive() bool { return true }
