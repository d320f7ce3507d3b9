package geometry

import "github.com/nragsdale/voltrace/pkg/core"

// Group is the simplest Accelerator: a linear scan over its shapes,
// selected by accelerator.type == "group" (spec.md §6). Adapted from
// original_source/src/surfacegroup.cpp.
type Group struct {
	Shapes []Shape
	box    AABB
}

// NewGroup builds a Group and its cached bounding box.
func NewGroup(shapes []Shape) *Group {
	g := &Group{Shapes: shapes}
	for i, s := range shapes {
		if i == 0 {
			g.box = s.BoundingBox()
		} else {
			g.box = Union(g.box, s.BoundingBox())
		}
	}
	return g
}

// Hit implements Shape by testing every child, keeping the closest.
func (g *Group) Hit(ray core.Ray, tMin, tMax float64) (core.HitInfo, bool) {
	var best core.HitInfo
	hitAnything := false
	closest := tMax
	for _, s := range g.Shapes {
		if hit, ok := s.Hit(ray, tMin, closest); ok {
			hitAnything = true
			closest = hit.T
			best = hit
		}
	}
	return best, hitAnything
}

// BoundingBox implements Shape.
func (g *Group) BoundingBox() AABB { return g.box }

// Count implements Accelerator.
func (g *Group) Count() int { return len(g.Shapes) }
