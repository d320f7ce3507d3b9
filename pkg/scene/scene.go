// Package scene wires an accelerator, background, emitter set and camera
// together into core.Scene: the black-box the integrators consume.
// Adapted from the teacher's pkg/scene/scene.go, which plays the same
// wiring role around its own Scene struct.
package scene

import (
	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/geometry"
)

// Scene implements core.Scene over a concrete accelerator, background and
// emitter set built by pkg/loaders.
type Scene struct {
	Accel     geometry.Accelerator
	Bg        core.Background
	EmitterSt core.EmitterSet
	Cam       core.Camera

	// TMax bounds the initial ray extent handed to Intersect; rays
	// otherwise carry core.Infinity, so a Scene may clamp the working
	// range (e.g. to the scale of its own geometry) without affecting
	// correctness.
	TMax float64
}

// Intersect implements core.Scene.
func (s *Scene) Intersect(ray core.Ray) (core.HitInfo, bool) {
	tMax := ray.Maxt
	if tMax <= 0 || tMax > s.tMax() {
		tMax = s.tMax()
	}
	return s.Accel.Hit(ray, core.Epsilon, tMax)
}

func (s *Scene) tMax() float64 {
	if s.TMax > 0 {
		return s.TMax
	}
	return core.Infinity
}

// Background implements core.Scene.
func (s *Scene) Background() core.Background { return s.Bg }

// Emitters implements core.Scene.
func (s *Scene) Emitters() core.EmitterSet { return s.EmitterSt }

// Camera implements core.Scene.
func (s *Scene) Camera() core.Camera { return s.Cam }
