package sampler

import (
	"math"
	"math/rand"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Stratified jitters each pixel sample within its own cell of a coarse
// grid over [0,1)^2, reducing clumping relative to Independent while
// still satisfying the bare [0,1) contract integrators rely on (spec.md
// §4.1: "integrators must not depend on their structure beyond the
// [0,1) contract"). 1-D draws fall back to plain uniform randoms since
// stratifying a single axis needs no 2-D cell bookkeeping.
type Stratified struct {
	rng           *rand.Rand
	samplesPerPix int
	strataPerAxis int
	sampleIndex   int
}

// NewStratified creates a Stratified sampler. samplesPerPixel should
// ideally be a perfect square so the grid tiles evenly; non-square counts
// fall back to a best-effort grid.
func NewStratified(seed int64, samplesPerPixel int) *Stratified {
	strata := int(math.Sqrt(float64(samplesPerPixel)))
	if strata < 1 {
		strata = 1
	}
	return &Stratified{
		rng:           rand.New(rand.NewSource(seed)),
		samplesPerPix: samplesPerPixel,
		strataPerAxis: strata,
	}
}

func (s *Stratified) Next1D() float64 { return s.rng.Float64() }

// Next2D jitters within the cell of a strataPerAxis x strataPerAxis grid
// that the current sample index falls into.
func (s *Stratified) Next2D() core.Vec2 {
	n := s.strataPerAxis
	cell := s.sampleIndex % (n * n)
	cx, cy := cell%n, cell/n
	return core.Vec2{
		X: (float64(cx) + s.rng.Float64()) / float64(n),
		Y: (float64(cy) + s.rng.Float64()) / float64(n),
	}
}

// StartPixel restarts the strata sequence at the first cell; the pattern
// does not depend on the pixel coordinates.
func (s *Stratified) StartPixel(x, y int) { s.sampleIndex = 0 }

// StartNextSample advances to the next of the pixel's image samples.
func (s *Stratified) StartNextSample() { s.sampleIndex++ }
