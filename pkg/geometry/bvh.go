package geometry

import (
	"sort"

	"github.com/nragsdale/voltrace/pkg/core"
)

// BVH is a bounding-volume hierarchy Accelerator, selected by
// accelerator.type == "bbh" (spec.md §6). Adapted from the teacher's
// pkg/core/bvh.go, generalized over the Shape interface.
type BVH struct {
	left, right Shape
	box         AABB
	count       int
}

// NewBVH builds a BVH over shapes via a recursive split at the median
// shape centroid along the longest axis of the shapes' combined bounding
// box, matching the teacher's approach.
func NewBVH(shapes []Shape) *BVH {
	return buildBVH(append([]Shape(nil), shapes...))
}

func buildBVH(shapes []Shape) *BVH {
	n := len(shapes)
	node := &BVH{count: n}

	switch n {
	case 0:
		return node
	case 1:
		node.left, node.right = shapes[0], shapes[0]
		node.box = shapes[0].BoundingBox()
		return node
	case 2:
		node.left, node.right = shapes[0], shapes[1]
		node.box = Union(shapes[0].BoundingBox(), shapes[1].BoundingBox())
		return node
	}

	bounds := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bounds = Union(bounds, s.BoundingBox())
	}
	ax := bounds.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return axis(shapes[i].BoundingBox().Centroid(), ax) < axis(shapes[j].BoundingBox().Centroid(), ax)
	})

	mid := n / 2
	left := buildBVH(shapes[:mid])
	right := buildBVH(shapes[mid:])
	node.left, node.right = left, right
	node.box = Union(left.BoundingBox(), right.BoundingBox())
	return node
}

// Hit implements Shape, pruning subtrees whose bounding box the ray misses.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (core.HitInfo, bool) {
	if b.count == 0 || !b.box.Hit(ray, tMin, tMax) {
		return core.HitInfo{}, false
	}
	if b.left == nil {
		return core.HitInfo{}, false
	}

	leftHit, hitLeft := b.left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}
	rightHit, hitRight := b.right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements Shape.
func (b *BVH) BoundingBox() AABB { return b.box }

// Count implements Accelerator.
func (b *BVH) Count() int { return b.count }
