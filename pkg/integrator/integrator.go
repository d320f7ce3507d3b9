package integrator

import "github.com/nragsdale/voltrace/pkg/core"

// Integrator is the common surface the renderer drives: given a primary
// ray and a sampler, estimate the radiance arriving along it (spec.md
// §2 "Integrators"). Unidirectional and NEE both satisfy it.
type Integrator interface {
	Li(ray core.Ray, sampler core.Sampler, logger core.Logger) core.Vec3
}
