// Package random provides a seeded pseudo-random generator for vectors and
// points in shapes. A Generator is explicitly constructed and passed around;
// there is no package level state.
package random

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

// Generator is safe for concurrent use. The source state is guarded by a spin
// lock since every draw holds it only for a few instructions.
type Generator struct {
	lock core.SpinLock
	rnd  *rand.Rand
}

// NewGenerator returns a generator whose sequence is fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFromTime seeds from the wall clock.
func NewGeneratorFromTime() *Generator {
	return NewGenerator(uint64(time.Now().UnixNano()))
}

func (g *Generator) Seed(seed uint64) {
	g.lock.Lock()
	g.rnd.Seed(seed)
	g.lock.Unlock()
}

// Float32 returns a value in [0, 1).
func (g *Generator) Float32() float32 {
	g.lock.Lock()
	f := g.rnd.Float32()
	g.lock.Unlock()
	return f
}

// Float32InRange returns a value in [min, max).
func (g *Generator) Float32InRange(min, max float32) float32 {
	return min + (max-min)*g.Float32()
}

// Int32InRange returns a value in [min, max], both inclusive. min must not
// exceed max.
func (g *Generator) Int32InRange(min, max int32) int32 {
	g.lock.Lock()
	n := g.rnd.Int63n(int64(max) - int64(min) + 1)
	g.lock.Unlock()
	return int32(int64(min) + n)
}

// Vec3InRange draws each component independently from [min, max).
func (g *Generator) Vec3InRange(min, max math.Vec3) math.Vec3 {
	t := math.NewVec3(g.Float32(), g.Float32(), g.Float32())
	return max.Sub(min).Mul(t).Add(min)
}

/**
 * @brief Returns a unit vector uniformly distributed on the sphere, drawn by
 * picking z uniformly in [-1, 1] and an angle around the z axis.
 */
func (g *Generator) UnitVec3() math.Vec3 {
	z := g.Float32InRange(-1, 1)
	phi := g.Float32InRange(0, scalar.K_PI_2)
	r := scalar.Sqrt(scalar.Max(0, 1-z*z))
	s, c := scalar.SinCos(phi)
	return math.NewVec3(r*c, r*s, z)
}

// PointInAabb returns a point inside the box. The box must be valid.
func (g *Generator) PointInAabb(box shapes.Aabb) math.Vec3 {
	return g.Vec3InRange(box.Min(), box.Max())
}

// PointInSphere returns a point uniformly distributed in the solid sphere.
func (g *Generator) PointInSphere(sphere shapes.Sphere) math.Vec3 {
	one := math.NewVec3One()
	for {
		p := g.Vec3InRange(one.Neg(), one)
		if p.LengthSquared() <= 1 {
			return p.MulScalar(sphere.Radius()).Add(sphere.Center())
		}
	}
}
