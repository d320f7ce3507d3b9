package geometry

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// Quad is a planar parallelogram primitive spanned by two edge vectors u,v
// from a corner point. Adapted from the teacher's pkg/geometry/quad.go.
type Quad struct {
	Corner, U, V core.Vec3
	Material     core.Material
	MI           *core.MediumInterface

	normal core.Vec3
	w      core.Vec3 // plane-basis vector for UV, see NewQuad
	d      float64
	area   float64
}

// NewQuad creates a quad. Near-degenerate quads (zero cross-product area)
// are flagged via a zero Normal so Hit always reports a miss, per
// spec.md §7's degenerate-geometry-returns-no-intersection rule.
func NewQuad(corner, u, v core.Vec3, material core.Material, mi *core.MediumInterface) *Quad {
	n := u.Cross(v)
	area := n.Length()
	q := &Quad{Corner: corner, U: u, V: v, Material: material, MI: mi, area: area}
	if area < 1e-12 {
		q.normal = core.Vec3{}
		return q
	}
	unitNormal := n.Multiply(1.0 / area)
	q.normal = unitNormal
	q.d = unitNormal.Dot(corner)
	q.w = n.Multiply(1.0 / n.Dot(n))
	return q
}

// Hit implements Shape.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (core.HitInfo, bool) {
	if q.area < 1e-12 {
		return core.HitInfo{}, false
	}

	denom := q.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitInfo{}, false
	}
	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return core.HitInfo{}, false
	}

	p := ray.At(t)
	planar := p.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitInfo{}, false
	}

	hit := core.HitInfo{
		T:        t,
		P:        p,
		Gn:       q.normal,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
		MI:       q.MI,
	}
	hit.Sn = q.normal
	return hit, true
}

// BoundingBox implements Shape, padded slightly since a quad is planar.
func (q *Quad) BoundingBox() AABB {
	a := q.Corner
	b := q.Corner.Add(q.U)
	c := q.Corner.Add(q.V)
	d := q.Corner.Add(q.U).Add(q.V)
	box := Union(AABB{Min: a, Max: a}, AABB{Min: b, Max: b})
	box = Union(box, AABB{Min: c, Max: c})
	box = Union(box, AABB{Min: d, Max: d})
	pad := core.NewVec3(1e-4, 1e-4, 1e-4)
	return AABB{Min: box.Min.Subtract(pad), Max: box.Max.Add(pad)}
}

// Area returns the quad's surface area, used by area-light sampling.
func (q *Quad) Area() float64 { return q.area }

// Normal returns the quad's (unit, front-face) geometric normal.
func (q *Quad) Normal() core.Vec3 { return q.normal }
