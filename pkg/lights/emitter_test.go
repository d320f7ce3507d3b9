package lights

import (
	"testing"

	"github.com/nragsdale/voltrace/pkg/core"
	"github.com/nragsdale/voltrace/pkg/geometry"
)

func floorQuad() *geometry.Quad {
	// A 2x2 quad at y=2, facing down (-y), centered above the origin.
	return geometry.NewQuad(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		nil, nil,
	)
}

func TestEmitterSamplePDFPositive(t *testing.T) {
	e := NewEmitter(floorQuad())
	x := core.NewVec3(0, 0, 0)

	wi, pdf := e.sample(x, core.Vec2{X: 0.5, Y: 0.5})
	if pdf <= 0 {
		t.Fatalf("expected positive pdf sampling toward a facing quad, got %f", pdf)
	}
	if wi.Y <= 0 {
		t.Errorf("expected direction to point upward toward the quad, got %v", wi)
	}
}

func TestUniformEmitterSetCombinesSelectionProbability(t *testing.T) {
	q1 := floorQuad()
	q2 := geometry.NewQuad(core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil, nil)
	set := NewUniformEmitterSet([]*Emitter{NewEmitter(q1), NewEmitter(q2)})

	x := core.NewVec3(0, 0, 0)
	wi, pdf := set.Sample(x, core.Vec2{X: 0.25, Y: 0.5})
	if pdf <= 0 {
		t.Fatalf("expected positive combined pdf, got %f", pdf)
	}

	direct := set.PDF(x, wi)
	if direct <= 0 {
		t.Errorf("PDF() for a direction known to hit a light should be positive, got %f", direct)
	}
}

func TestUniformEmitterSetEmptyIsZero(t *testing.T) {
	set := NewUniformEmitterSet(nil)
	_, pdf := set.Sample(core.Vec3{}, core.Vec2{X: 0.5, Y: 0.5})
	if pdf != 0 {
		t.Errorf("empty emitter set should have zero pdf, got %f", pdf)
	}
}
