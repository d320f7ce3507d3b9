package scene

import (
	"testing"

	"github.com/nragsdale/voltrace/pkg/background"
	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/geometry"
	"github.com/nragsdale/voltrace/pkg/material"
)

func TestSceneIntersectDelegatesToAccelerator(t *testing.T) {
	lam := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sph := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, lam, nil)
	accel := geometry.NewGroup([]geometry.Shape{sph})

	s := &Scene{
		Accel:     accel,
		Bg:        background.NewSolid(core.Vec3{}),
		EmitterSt: nil,
		Cam:       nil,
	}

	hit, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("expected a hit on the sphere")
	}
	if hit.T <= 0 {
		t.Errorf("expected a positive hit distance, got %f", hit.T)
	}
}

func TestSceneIntersectMissReportsFalse(t *testing.T) {
	accel := geometry.NewGroup(nil)
	s := &Scene{Accel: accel, Bg: background.NewSolid(core.Vec3{})}

	_, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if ok {
		t.Error("expected no hit against an empty accelerator")
	}
}
