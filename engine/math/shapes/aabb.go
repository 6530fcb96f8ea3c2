// Package shapes holds the geometric primitives: axis aligned boxes, spheres,
// capsules, hemispheres, rays, line segments, planes and triangles. All of
// them are immutable values; every query returns a new value.
package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

/**
 * @brief An axis aligned bounding box. A valid box has min <= max on every
 * axis. The null box (see NewAabbNull) represents the empty set.
 */
type Aabb struct {
	min math.Vec3
	max math.Vec3
}

/**
 * @brief Returns the null box: min = +K_FLOAT_MAX, max = -K_FLOAT_MAX. It
 * contains no point, is not valid, and AddPoint on it yields a box around
 * exactly that point.
 */
func NewAabbNull() Aabb {
	return Aabb{
		min: math.NewVec3Splat(scalar.K_FLOAT_MAX),
		max: math.NewVec3Splat(-scalar.K_FLOAT_MAX),
	}
}

// NewAabbFromPoint returns a zero volume box at p.
func NewAabbFromPoint(p math.Vec3) Aabb {
	return Aabb{min: p, max: p}
}

// NewAabbFromMinMax does not reorder its arguments: an inverted pair yields an
// invalid box.
func NewAabbFromMinMax(min, max math.Vec3) Aabb {
	return Aabb{min: min, max: max}
}

func NewAabbFromCenterHalfExtents(center, halfExtents math.Vec3) Aabb {
	return Aabb{min: center.Sub(halfExtents), max: center.Add(halfExtents)}
}

// NewAabbFromPoints returns the smallest box holding every point, or the null
// box for an empty slice.
func NewAabbFromPoints(points []math.Vec3) Aabb {
	box := NewAabbNull()
	for _, p := range points {
		box = box.AddPoint(p)
	}
	return box
}

func (a Aabb) Min() math.Vec3 { return a.min }
func (a Aabb) Max() math.Vec3 { return a.max }

func (a Aabb) Center() math.Vec3 {
	return a.min.Add(a.max).MulScalar(0.5)
}

// Extents is the full size of the box on each axis.
func (a Aabb) Extents() math.Vec3 {
	return a.max.Sub(a.min)
}

func (a Aabb) HalfExtents() math.Vec3 {
	return a.Extents().MulScalar(0.5)
}

// SurfaceArea is zero for an invalid box.
func (a Aabb) SurfaceArea() float32 {
	if !a.IsValid() {
		return 0
	}
	e := a.Extents()
	return 2 * (e.X()*e.Y() + e.Y()*e.Z() + e.Z()*e.X())
}

// Volume is zero for an invalid box.
func (a Aabb) Volume() float32 {
	if !a.IsValid() {
		return 0
	}
	e := a.Extents()
	return e.X() * e.Y() * e.Z()
}

/**
 * @brief Reports whether min <= max on every axis. The null box is not valid.
 */
func (a Aabb) IsValid() bool {
	return a.min.IsLessEqualThan(a.max)
}

func (a Aabb) IsClose(other Aabb, tolerance float32) bool {
	return a.min.IsClose(other.min, tolerance) && a.max.IsClose(other.max, tolerance)
}

// Contains reports whether p lies inside or on the boundary of the box.
func (a Aabb) Contains(p math.Vec3) bool {
	return a.min.IsLessEqualThan(p) && p.IsLessEqualThan(a.max)
}

// ContainsAabb reports whether other lies entirely inside a.
func (a Aabb) ContainsAabb(other Aabb) bool {
	return a.min.IsLessEqualThan(other.min) && other.max.IsLessEqualThan(a.max)
}

// Overlaps reports whether the boxes share at least one point. Touching faces
// count as overlapping.
func (a Aabb) Overlaps(other Aabb) bool {
	return a.min.IsLessEqualThan(other.max) && other.min.IsLessEqualThan(a.max)
}

// AddPoint returns the smallest box holding a and p.
func (a Aabb) AddPoint(p math.Vec3) Aabb {
	return Aabb{min: a.min.Min(p), max: a.max.Max(p)}
}

// AddAabb returns the union of both boxes.
func (a Aabb) AddAabb(other Aabb) Aabb {
	return Aabb{min: a.min.Min(other.min), max: a.max.Max(other.max)}
}

// Expanded grows the box by amount on every side. A negative amount shrinks it.
func (a Aabb) Expanded(amount float32) Aabb {
	d := math.NewVec3Splat(amount)
	return Aabb{min: a.min.Sub(d), max: a.max.Add(d)}
}

func (a Aabb) Translated(offset math.Vec3) Aabb {
	return Aabb{min: a.min.Add(offset), max: a.max.Add(offset)}
}

// Corner returns one of the eight corners; bit 0 of i selects max x, bit 1
// max y and bit 2 max z.
func (a Aabb) Corner(i int) math.Vec3 {
	pick := func(bit int, lo, hi float32) float32 {
		if i&bit != 0 {
			return hi
		}
		return lo
	}
	return math.NewVec3(
		pick(1, a.min.X(), a.max.X()),
		pick(2, a.min.Y(), a.max.Y()),
		pick(4, a.min.Z(), a.max.Z()),
	)
}

/**
 * @brief Returns the box enclosing the eight corners of a transformed by m as
 * points. The null box stays null.
 */
func (a Aabb) Transformed(m math.Mat4) Aabb {
	if !a.IsValid() {
		return a
	}
	box := NewAabbNull()
	for i := 0; i < 8; i++ {
		box = box.AddPoint(a.Corner(i).Transform(m))
	}
	return box
}

// ClosestPoint clamps p into the box.
func (a Aabb) ClosestPoint(p math.Vec3) math.Vec3 {
	return p.Clamp(a.min, a.max)
}

// Distance from p to the box; zero when p is inside.
func (a Aabb) Distance(p math.Vec3) float32 {
	return p.Distance(a.ClosestPoint(p))
}

func (a Aabb) DistanceSquared(p math.Vec3) float32 {
	return p.DistanceSquared(a.ClosestPoint(p))
}
