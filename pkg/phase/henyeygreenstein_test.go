package phase

import (
	"math"
	"testing"

	"github.com/nragsdale/voltrace/pkg/core"
)

func TestHenyeyGreensteinIsotropicIntegratesToOne(t *testing.T) {
	hg := NewHenyeyGreenstein(0)
	wo := core.NewVec3(0, 0, 1)

	// Integrate P over the sphere via a coarse equirectangular quadrature;
	// isotropic scattering should integrate to ~1 (spec.md §8).
	const nTheta, nPhi = 64, 128
	sum := 0.0
	for i := 0; i < nTheta; i++ {
		theta := (float64(i) + 0.5) / float64(nTheta) * math.Pi
		sinTheta := math.Sin(theta)
		dOmega := sinTheta * (math.Pi / nTheta) * (2 * math.Pi / nPhi)
		for j := 0; j < nPhi; j++ {
			phi := (float64(j) + 0.5) / float64(nPhi) * 2 * math.Pi
			wi := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), math.Cos(theta))
			sum += hg.P(wo, wi) * dOmega
		}
	}

	if math.Abs(sum-1.0) > 0.02 {
		t.Errorf("isotropic phase function integrated to %f, want ~1", sum)
	}
}

func TestHenyeyGreensteinSamplePDFMatchesP(t *testing.T) {
	hg := NewHenyeyGreenstein(0.6)
	wo := core.NewVec3(1, 0, 0)

	wi, pdf := hg.Sample(wo, core.Vec2{X: 0.3, Y: 0.7})

	if math.Abs(wi.Length()-1.0) > 1e-6 {
		t.Errorf("sampled direction should be unit length, got %v (len %f)", wi, wi.Length())
	}

	evaluated := hg.P(wo, wi)
	if math.Abs(evaluated-pdf) > 1e-9 {
		t.Errorf("Sample pdf (%f) should equal P(wo,wi) (%f): HG sampling is exact", pdf, evaluated)
	}
}

func TestHenyeyGreensteinForwardScatteringPeaksForward(t *testing.T) {
	hg := NewHenyeyGreenstein(0.9)
	// wo points back along the incident ray (away from the scattering
	// point, toward where the ray came from), matching dirt's convention.
	// A forward-continuing wi is then opposite wo (cosTheta = -1).
	wo := core.NewVec3(0, 0, 1)

	continuing := hg.P(wo, core.NewVec3(0, 0, -1))
	reversing := hg.P(wo, core.NewVec3(0, 0, 1))

	if continuing <= reversing {
		t.Errorf("g=0.9 should favor continuing in the incident direction: continuing=%f reversing=%f", continuing, reversing)
	}
}
