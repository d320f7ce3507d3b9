package material

import "github.com/nragsdale/voltrace/pkg/core"

// Blend stochastically forwards to one of two child materials, weighted by
// the luminance of the Amount texture (spec.md §4.2). Adapted from
// original_source/src/material.cpp's BlendMaterial, which picks child A or
// B at random rather than mixing their BSDFs analytically.
type Blend struct {
	A, B   core.Material
	Amount ColorTexture
}

// NewBlend creates a Blend material mixing A and B by a constant amount
// (0 => always A, 1 => always B).
func NewBlend(a, b core.Material, amount float64) *Blend {
	return &Blend{A: a, B: b, Amount: Constant(core.NewVec3(amount, amount, amount))}
}

func (bl *Blend) weight(hit core.HitInfo) float64 {
	return bl.Amount(hit).Luminance()
}

func (bl *Blend) pick(hit core.HitInfo, u float64) core.Material {
	if u < bl.weight(hit) {
		return bl.B
	}
	return bl.A
}

func (bl *Blend) Scatter(rayIn core.Ray, hit core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	return bl.pick(hit, sampler.Next1D()).Scatter(rayIn, hit, sampler)
}

func (bl *Blend) Eval(wo, wi core.Vec3, hit core.HitInfo) core.Vec3 {
	t := bl.weight(hit)
	return bl.A.Eval(wo, wi, hit).Multiply(1 - t).Add(bl.B.Eval(wo, wi, hit).Multiply(t))
}

func (bl *Blend) PDF(wo, wi core.Vec3, hit core.HitInfo) float64 {
	t := bl.weight(hit)
	return (1-t)*bl.A.PDF(wo, wi, hit) + t*bl.B.PDF(wo, wi, hit)
}

func (bl *Blend) Emitted(rayIn core.Ray, hit core.HitInfo) core.Vec3 {
	t := bl.weight(hit)
	return bl.A.Emitted(rayIn, hit).Multiply(1 - t).Add(bl.B.Emitted(rayIn, hit).Multiply(t))
}

func (bl *Blend) IsEmissive() bool {
	return bl.A.IsEmissive() || bl.B.IsEmissive()
}
