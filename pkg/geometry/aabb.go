package geometry

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// AABB is an axis-aligned bounding box, used only by the acceleration
// structure — outside the core's concern, adapted from the teacher's
// pkg/core/aabb.go.
type AABB struct {
	Min, Max core.Vec3
}

// Union returns the smallest AABB containing both boxes.
func Union(a, b AABB) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: core.NewVec3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Centroid returns the box's center point.
func (b AABB) Centroid() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns 0, 1 or 2 for the box's longest extent.
func (b AABB) LongestAxis() int {
	d := b.Max.Subtract(b.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

func axis(v core.Vec3, a int) float64 {
	switch a {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit tests whether the ray's active interval intersects the box, using
// the slab method.
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		invD := 1.0 / axis(ray.Direction, a)
		t0 := (axis(b.Min, a) - axis(ray.Origin, a)) * invD
		t1 := (axis(b.Max, a) - axis(ray.Origin, a)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
