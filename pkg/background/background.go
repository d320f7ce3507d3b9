// Package background implements core.Background: the radiance returned for
// rays that escape the scene (spec.md §6 "background": a solid colour, or
// {type: "image", filename}). Adapted from the teacher's
// PathTracingIntegrator.BackgroundGradient (a top/bottom lerp keyed off ray
// direction), generalized into standalone, reusable core.Background values
// instead of being hardwired into the integrator.
package background

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Solid is a uniform background: every escaping ray sees the same radiance.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a Solid background.
func NewSolid(color core.Vec3) Solid { return Solid{Color: color} }

// Emitted implements core.Background.
func (s Solid) Emitted(ray core.Ray) core.Vec3 { return s.Color }

// Gradient lerps between a bottom and top color by the ray's vertical
// direction component, matching the teacher's sky-gradient look.
type Gradient struct {
	Bottom, Top core.Vec3
}

// NewGradient creates a Gradient background.
func NewGradient(bottom, top core.Vec3) Gradient { return Gradient{Bottom: bottom, Top: top} }

// Emitted implements core.Background.
func (g Gradient) Emitted(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return g.Bottom.Multiply(1 - t).Add(g.Top.Multiply(t))
}

// EquirectangularImage samples a lat-long environment map by ray direction.
// Pixels are stored row-major, top row first, matching the orientation an
// image decoder would hand back.
type EquirectangularImage struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewEquirectangularImage wraps a decoded image buffer as a background.
func NewEquirectangularImage(width, height int, pixels []core.Vec3) *EquirectangularImage {
	return &EquirectangularImage{Width: width, Height: height, Pixels: pixels}
}

// Emitted implements core.Background.
func (img *EquirectangularImage) Emitted(ray core.Ray) core.Vec3 {
	if img.Width == 0 || img.Height == 0 {
		return core.Vec3{}
	}
	d := ray.Direction.Normalize()
	phi := math.Atan2(d.Z, d.X)
	theta := math.Acos(clamp(d.Y, -1, 1))

	u := (phi + math.Pi) / (2 * math.Pi)
	v := theta / math.Pi

	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))
	x = clampInt(x, 0, img.Width-1)
	y = clampInt(y, 0, img.Height-1)
	return img.Pixels[y*img.Width+x]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
