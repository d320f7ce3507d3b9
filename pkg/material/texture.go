package material

import "github.com/nragsdale/voltrace/pkg/core"

// ColorTexture evaluates a spatially-varying color at a hit point. Most
// materials in spec.md §4.2 carry their parameters "typically as
// textures"; a constant texture is the common case, adapted from the
// teacher's pkg/material/color_source.go pattern of small function-typed
// texture sources instead of an interface hierarchy.
type ColorTexture func(hit core.HitInfo) core.Vec3

// ScalarTexture is the single-channel analogue, used for roughness/amount.
type ScalarTexture func(hit core.HitInfo) float64

// Constant returns a texture that ignores the hit and always returns c.
func Constant(c core.Vec3) ColorTexture {
	return func(core.HitInfo) core.Vec3 { return c }
}

// ConstantScalar returns a scalar texture that always returns v.
func ConstantScalar(v float64) ScalarTexture {
	return func(core.HitInfo) float64 { return v }
}
