// Package intersect holds point, ray and shape queries over the shapes
// package: containment tests, closest points and ray casts. Every function is
// pure and unchecked; degenerate inputs give IEEE-754 results rather than
// errors.
package intersect

import (
	"github.com/spaghettifunk/animath/engine/math"
)

/**
 * @brief Computes the barycentric coordinates (u, v, w) of p with respect to
 * the triangle a, b, c, so that p = u*a + v*b + w*c when p lies in the
 * triangle's plane. Points off the plane are projected.
 *
 * The triangle must not be degenerate. With zero area the denominator is zero
 * and the result is NaN or Inf; callers check this beforehand if needed.
 */
func Barycentric(a, b, c, p math.Vec3) (u, v, w float32) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1.0 - v - w
	return u, v, w
}

// TestPointTriangle reports whether every barycentric coordinate of p is non
// negative. Same precondition as Barycentric.
func TestPointTriangle(p, a, b, c math.Vec3) bool {
	u, v, w := Barycentric(a, b, c, p)
	return u >= 0 && v >= 0 && w >= 0
}

/**
 * @brief Returns the point of triangle a, b, c closest to p, by Voronoi
 * region: one of the vertices, a point on one of the edges, or the projection
 * of p onto the face.
 */
func ClosestPointTriangle(p, a, b, c math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)

	// Vertex region a
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	// Vertex region b
	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	// Edge region ab
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return ab.MulScalar(v).Add(a)
	}

	// Vertex region c
	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	// Edge region ac
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return ac.MulScalar(w).Add(a)
	}

	// Edge region bc
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return c.Sub(b).MulScalar(w).Add(b)
	}

	// Face region
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return ab.MulScalar(v).Add(ac.MulScalar(w)).Add(a)
}
