// Package lights implements core.EmitterSet: area-light sampling used by
// next-event estimation (spec.md §4.7).
package lights

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/geometry"
)

// Emitter is a single sampleable area light: a quad whose material is
// emissive. Adapted from the teacher's pkg/lights/quad_light.go, trimmed
// to the solid-angle sample/PDF pair core.EmitterSet needs; actual
// emitted radiance is fetched later by the integrator's TrL walk rather
// than returned here, so Emitter never touches core.Material directly.
type Emitter struct {
	Quad *geometry.Quad
}

// NewEmitter wraps a quad as a sampleable light.
func NewEmitter(q *geometry.Quad) *Emitter {
	return &Emitter{Quad: q}
}

// sample draws a point uniformly on the quad and converts the area-measure
// PDF to a solid-angle PDF as seen from x (spec.md §4.7, GLOSSARY
// "solid-angle PDF"): pdf_solid_angle = pdf_area * distance^2 / |cosTheta|.
func (e *Emitter) sample(x core.Vec3, u core.Vec2) (wi core.Vec3, pdf float64) {
	point := e.Quad.Corner.Add(e.Quad.U.Multiply(u.X)).Add(e.Quad.V.Multiply(u.Y))
	toLight := point.Subtract(x)
	distance := toLight.Length()
	if distance < 1e-9 {
		return core.Vec3{}, 0
	}
	wi = toLight.Multiply(1.0 / distance)

	cosTheta := math.Abs(e.Quad.Normal().Dot(wi.Negate()))
	if cosTheta < 1e-8 {
		return wi, 0
	}

	areaPDF := 1.0 / e.Quad.Area()
	return wi, areaPDF * distance * distance / cosTheta
}

// pdf evaluates the solid-angle density of direction wi from x by
// re-intersecting the quad, matching the teacher's QuadLight.PDF.
func (e *Emitter) pdf(x core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(x, wi)
	hit, ok := e.Quad.Hit(ray, core.Epsilon, core.Infinity)
	if !ok {
		return 0
	}
	cosTheta := math.Abs(e.Quad.Normal().Dot(wi.Negate()))
	if cosTheta < 1e-8 {
		return 0
	}
	areaPDF := 1.0 / e.Quad.Area()
	return areaPDF * hit.T * hit.T / cosTheta
}

// UniformEmitterSet selects among registered emitters with equal
// probability, combining per-light solid-angle PDFs with the 1/N
// selection probability (spec.md §4.7). Grounded on the teacher's
// pkg/core/weighted_light_sampler.go NewUniformLightSampler, specialized
// to uniform weights since spec.md does not call for importance weights.
type UniformEmitterSet struct {
	emitters []*Emitter
}

// NewUniformEmitterSet builds a set over the given emitters.
func NewUniformEmitterSet(emitters []*Emitter) *UniformEmitterSet {
	return &UniformEmitterSet{emitters: emitters}
}

// Sample picks one emitter uniformly (using the high bits of u.X to keep
// u.Y available for the in-light sample) and returns a direction toward
// it plus the combined pdf.
func (s *UniformEmitterSet) Sample(x core.Vec3, u core.Vec2) (core.Vec3, float64) {
	n := len(s.emitters)
	if n == 0 {
		return core.Vec3{}, 0
	}
	scaled := u.X * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	uLight := core.Vec2{X: scaled - float64(idx), Y: u.Y}

	wi, pdf := s.emitters[idx].sample(x, uLight)
	if pdf <= 0 {
		return wi, 0
	}
	return wi, pdf / float64(n)
}

// PDF evaluates the density of direction wi from x under uniform
// selection: the average of each emitter's individual pdf for that
// direction (spec.md §4.7's MIS weight needs this exact quantity).
func (s *UniformEmitterSet) PDF(x core.Vec3, wi core.Vec3) float64 {
	n := len(s.emitters)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range s.emitters {
		sum += e.pdf(x, wi)
	}
	return sum / float64(n)
}
