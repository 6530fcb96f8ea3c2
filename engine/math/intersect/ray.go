package intersect

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

// Direction components or determinants below this are treated as parallel.
const parallelEpsilon float32 = 1e-8

/**
 * @brief Slab test of ray against box.
 *
 * @return tEnter and tExit along the ray direction and whether the ray hits.
 * tEnter is negative when the origin is inside the box.
 */
func RayAabb(ray shapes.Ray, box shapes.Aabb) (tEnter, tExit float32, hit bool) {
	o := ray.Origin()
	d := ray.Direction()
	lo := box.Min()
	hi := box.Max()

	tEnter, tExit = -scalar.K_FLOAT_MAX, scalar.K_FLOAT_MAX
	for axis := 0; axis < 3; axis++ {
		oa, da := o.Component(axis), d.Component(axis)
		mn, mx := lo.Component(axis), hi.Component(axis)

		if scalar.Fabs(da) < parallelEpsilon {
			if oa < mn || oa > mx {
				return 0, 0, false
			}
			continue
		}

		inv := 1.0 / da
		t1 := (mn - oa) * inv
		t2 := (mx - oa) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, 0, false
		}
	}
	if tExit < 0 {
		return 0, 0, false
	}
	return tEnter, tExit, true
}

/**
 * @brief Returns the first t >= 0 at which the ray touches the sphere. An
 * origin inside the sphere hits at t = 0.
 */
func RaySphere(ray shapes.Ray, sphere shapes.Sphere) (float32, bool) {
	m := ray.Origin().Sub(sphere.Center())
	d := ray.Direction()
	r := sphere.Radius()

	c := m.LengthSquared() - r*r
	if c <= 0 {
		return 0, true
	}

	a := d.LengthSquared()
	b := m.Dot(d)
	// Origin outside and pointing away, or no direction at all.
	if b > 0 || a <= 0 {
		return 0, false
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	return (-b - scalar.Sqrt(disc)) / a, true
}

// RayPlane returns the t >= 0 at which the ray crosses the plane. Rays
// parallel to the plane never hit.
func RayPlane(ray shapes.Ray, plane shapes.Plane) (float32, bool) {
	denom := plane.Normal().Dot(ray.Direction())
	if scalar.Fabs(denom) < parallelEpsilon {
		return 0, false
	}
	t := -plane.SignedDistance(ray.Origin()) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

/**
 * @brief Möller-Trumbore ray/triangle test. Both windings hit.
 *
 * @return t along the ray, the barycentric weights u of b and v of c, and
 * whether the ray hits at t >= 0.
 */
func RayTriangle(ray shapes.Ray, a, b, c math.Vec3) (t, u, v float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pvec := ray.Direction().Cross(e2)
	det := e1.Dot(pvec)
	if scalar.Fabs(det) < parallelEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin().Sub(a)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = ray.Direction().Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t < 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
