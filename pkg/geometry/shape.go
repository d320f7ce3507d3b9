package geometry

import "github.com/nragsdale/voltrace/pkg/core"

// Shape is the primitive-geometry contract the core's Scene is built on
// top of. Primitives and their intersection routines are out of scope for
// the core (spec.md §1) — this interface is the seam.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitInfo, bool)
	BoundingBox() AABB
}

// Accelerator is a Shape that aggregates other shapes. Both Group (linear
// scan) and BVH satisfy it, selectable via the scene's accelerator.type
// field (spec.md §6).
type Accelerator interface {
	Shape
	Count() int
}
