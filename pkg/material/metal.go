package material

import "github.com/nragsdale/voltrace/pkg/core"

// Metal is a rough-mirror specular material (spec.md §4.2). Adapted from
// the teacher's pkg/material/metal.go.
type Metal struct {
	Albedo    ColorTexture
	Roughness ScalarTexture
}

// NewMetal creates a Metal material, clamping roughness to [0,1].
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	if roughness > 1 {
		roughness = 1
	}
	if roughness < 0 {
		roughness = 0
	}
	return &Metal{Albedo: Constant(albedo), Roughness: ConstantScalar(roughness)}
}

func (m *Metal) Scatter(rayIn core.Ray, hit core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Sn)

	rough := m.Roughness(hit)
	if rough > 0 {
		perturb := core.RandomOnUnitSphere(sampler.Next2D()).Multiply(rough)
		reflected = reflected.Add(perturb)
	}

	if reflected.Dot(hit.Sn) <= 0 {
		return core.ScatterRecord{}, false
	}

	return core.ScatterRecord{
		Attenuation: m.Albedo(hit),
		Scattered:   reflected.Normalize(),
		IsSpecular:  true,
	}, true
}

func (m *Metal) Eval(wo, wi core.Vec3, hit core.HitInfo) core.Vec3 { return core.Vec3{} }
func (m *Metal) PDF(wo, wi core.Vec3, hit core.HitInfo) float64    { return 0 }
func (m *Metal) Emitted(core.Ray, core.HitInfo) core.Vec3         { return core.Vec3{} }
func (m *Metal) IsEmissive() bool                                 { return false }
