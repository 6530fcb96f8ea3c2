package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

// Hemisphere is the half of a sphere on the side its direction points to.
type Hemisphere struct {
	center    math.Vec3
	radius    float32
	direction math.Vec3
}

// NewHemisphere normalizes direction. A zero direction yields a zero
// direction, for which Contains degenerates to the full sphere.
func NewHemisphere(center math.Vec3, radius float32, direction math.Vec3) Hemisphere {
	return Hemisphere{
		center:    center,
		radius:    radius,
		direction: direction.NormalizeSafe(scalar.K_FLOAT_EPSILON),
	}
}

func (h Hemisphere) Center() math.Vec3    { return h.center }
func (h Hemisphere) Radius() float32      { return h.radius }
func (h Hemisphere) Direction() math.Vec3 { return h.direction }

// Contains includes the flat disc and the curved surface.
func (h Hemisphere) Contains(p math.Vec3) bool {
	d := p.Sub(h.center)
	return d.LengthSquared() <= h.radius*h.radius && d.Dot(h.direction) >= 0
}

func (h Hemisphere) IsClose(other Hemisphere, tolerance float32) bool {
	return h.center.IsClose(other.center, tolerance) &&
		scalar.IsClose(h.radius, other.radius, tolerance) &&
		h.direction.IsClose(other.direction, tolerance)
}
