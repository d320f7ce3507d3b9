package geometry

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Sphere is a geometric primitive, out of the core's scope but needed as
// a concrete Shape to exercise Scene.Intersect. Adapted from the teacher's
// pkg/geometry/sphere.go.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material // nil marks a medium-boundary-only surface
	MI       *core.MediumInterface
}

// NewSphere creates a sphere with an optional medium interface.
func NewSphere(center core.Vec3, radius float64, material core.Material, mi *core.MediumInterface) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material, MI: mi}
}

// Hit implements Shape. Degenerate spheres (radius <= 0) never intersect,
// matching spec.md §7's "degenerate geometry returns no intersection"
// rather than raising an error.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitInfo, bool) {
	if s.Radius <= 0 {
		return core.HitInfo{}, false
	}

	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitInfo{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitInfo{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)

	return core.HitInfo{
		T:        root,
		P:        point,
		Gn:       outwardNormal,
		Sn:       outwardNormal,
		UV:       uv,
		Material: s.Material,
		MI:       s.MI,
	}, true
}

// BoundingBox implements Shape.
func (s *Sphere) BoundingBox() AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Subtract(r), Max: s.Center.Add(r)}
}
