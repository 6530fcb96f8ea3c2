package scene

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/intersect"
	"github.com/spaghettifunk/animath/engine/math/mesh"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

// Points closer than this to a surface-only body count as on it.
const surfaceTolerance = scalar.K_TOLERANCE

// Body is a shape placed in world space, ready to be queried. Solid bodies
// return the query point itself as the closest point when it is inside.
type Body interface {
	ID() string
	Kind() string
	Contains(p math.Vec3) bool
	ClosestPoint(p math.Vec3) math.Vec3
	Bounds() shapes.Aabb
}

// Raycaster is implemented by bodies that support ray casts. t is the ray
// parameter of the first hit at or after the origin.
type Raycaster interface {
	Raycast(ray shapes.Ray) (t float32, hit bool)
}

type bodyInfo struct {
	id   string
	kind string
}

func (b bodyInfo) ID() string   { return b.id }
func (b bodyInfo) Kind() string { return b.kind }

// aabbBody is a box that may be rigidly rotated. Queries run in the box's own
// frame, so a rotated box keeps its shape instead of growing into the
// axis-aligned box around its corners.
type aabbBody struct {
	bodyInfo
	local   shapes.Aabb
	world   math.Mat4
	inverse math.Mat4
	bounds  shapes.Aabb
}

// newAabbBody expects world to be rigid: rotation and translation only.
func newAabbBody(info bodyInfo, local shapes.Aabb, world math.Mat4) *aabbBody {
	return &aabbBody{
		bodyInfo: info,
		local:    local,
		world:    world,
		inverse:  world.InverseFast(),
		bounds:   local.Transformed(world),
	}
}

func (b *aabbBody) toLocal(p math.Vec3) math.Vec3 { return p.Transform(b.inverse) }

func (b *aabbBody) Contains(p math.Vec3) bool {
	return intersect.PointAabb(b.local, b.toLocal(p))
}

func (b *aabbBody) ClosestPoint(p math.Vec3) math.Vec3 {
	if b.Contains(p) {
		return p
	}
	return intersect.ClosestPointAabb(b.toLocal(p), b.local).Transform(b.world)
}

func (b *aabbBody) Bounds() shapes.Aabb { return b.bounds }

// Raycast works in the box frame. Rigid transforms keep lengths, so t carries
// over unchanged.
func (b *aabbBody) Raycast(ray shapes.Ray) (float32, bool) {
	local := shapes.NewRay(b.toLocal(ray.Origin()), ray.Direction().TransformDirection(b.inverse))
	enter, _, hit := intersect.RayAabb(local, b.local)
	return scalar.Max(enter, 0), hit
}

type sphereBody struct {
	bodyInfo
	sphere shapes.Sphere
}

func (b *sphereBody) Contains(p math.Vec3) bool {
	r := b.sphere.Radius()
	return intersect.PointSphere(b.sphere.Center(), r*r, p)
}

func (b *sphereBody) ClosestPoint(p math.Vec3) math.Vec3 {
	return intersect.ClosestPointSphere(p, b.sphere)
}

func (b *sphereBody) Bounds() shapes.Aabb { return b.sphere.Bounds() }

func (b *sphereBody) Raycast(ray shapes.Ray) (float32, bool) {
	return intersect.RaySphere(ray, b.sphere)
}

type capsuleBody struct {
	bodyInfo
	capsule shapes.Capsule
}

func (b *capsuleBody) Contains(p math.Vec3) bool { return intersect.PointCapsule(b.capsule, p) }
func (b *capsuleBody) ClosestPoint(p math.Vec3) math.Vec3 {
	return intersect.ClosestPointCapsule(p, b.capsule)
}
func (b *capsuleBody) Bounds() shapes.Aabb { return b.capsule.Bounds() }

type cylinderBody struct {
	bodyInfo
	base   math.Vec3
	axis   math.Vec3
	radius float32
}

func (b *cylinderBody) Contains(p math.Vec3) bool {
	return intersect.PointCylinder(b.base, b.axis, b.axis.LengthSquared(), b.radius*b.radius, p)
}

func (b *cylinderBody) ClosestPoint(p math.Vec3) math.Vec3 {
	return intersect.ClosestPointCylinder(p, b.base, b.axis, b.radius)
}

// Bounds encloses both cap discs conservatively.
func (b *cylinderBody) Bounds() shapes.Aabb {
	top := b.base.Add(b.axis)
	r := math.NewVec3Splat(b.radius)
	return shapes.NewAabbFromMinMax(b.base.Min(top).Sub(r), b.base.Max(top).Add(r))
}

type triangleBody struct {
	bodyInfo
	tri   shapes.Triangle
	plane shapes.Plane
}

func newTriangleBody(info bodyInfo, tri shapes.Triangle) *triangleBody {
	return &triangleBody{
		bodyInfo: info,
		tri:      tri,
		plane:    shapes.NewPlaneFromTriangle(tri.A(), tri.B(), tri.C()),
	}
}

// Contains holds for points on the triangle within surfaceTolerance of its
// plane.
func (b *triangleBody) Contains(p math.Vec3) bool {
	if scalar.Fabs(b.plane.SignedDistance(p)) > surfaceTolerance {
		return false
	}
	return intersect.TestPointTriangle(p, b.tri.A(), b.tri.B(), b.tri.C())
}

func (b *triangleBody) ClosestPoint(p math.Vec3) math.Vec3 {
	return intersect.ClosestPointTriangle(p, b.tri.A(), b.tri.B(), b.tri.C())
}

func (b *triangleBody) Bounds() shapes.Aabb { return b.tri.Bounds() }

func (b *triangleBody) Raycast(ray shapes.Ray) (float32, bool) {
	t, _, _, hit := intersect.RayTriangle(ray, b.tri.A(), b.tri.B(), b.tri.C())
	return t, hit
}

// planeBody is the closed half space behind the plane normal.
type planeBody struct {
	bodyInfo
	plane shapes.Plane
}

func (b *planeBody) Contains(p math.Vec3) bool {
	return b.plane.SignedDistance(p) <= 0
}

func (b *planeBody) ClosestPoint(p math.Vec3) math.Vec3 {
	distance, projected := intersect.ClosestPointPlane(p, b.plane)
	if distance <= 0 {
		return p
	}
	return projected
}

func (b *planeBody) Bounds() shapes.Aabb {
	return shapes.NewAabbFromMinMax(math.NewVec3Splat(-scalar.K_FLOAT_MAX), math.NewVec3Splat(scalar.K_FLOAT_MAX))
}

func (b *planeBody) Raycast(ray shapes.Ray) (float32, bool) {
	return intersect.RayPlane(ray, b.plane)
}

// meshBody is a triangle surface. It has no inside; Contains holds for points
// on the surface.
type meshBody struct {
	bodyInfo
	triangles []*triangleBody
	bounds    shapes.Aabb
}

func newMeshBody(info bodyInfo, vertices []mesh.Vertex3D, indices []uint32) *meshBody {
	b := &meshBody{bodyInfo: info, bounds: shapes.NewAabbNull()}
	for _, v := range vertices {
		b.bounds = b.bounds.AddPoint(v.Position)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		tri := shapes.NewTriangle(vertices[indices[i]].Position, vertices[indices[i+1]].Position, vertices[indices[i+2]].Position)
		if tri.IsDegenerate() {
			continue
		}
		b.triangles = append(b.triangles, newTriangleBody(info, tri))
	}
	return b
}

func (b *meshBody) Contains(p math.Vec3) bool {
	for _, tri := range b.triangles {
		if tri.Contains(p) {
			return true
		}
	}
	return false
}

// ClosestPoint of a mesh without triangles is p itself.
func (b *meshBody) ClosestPoint(p math.Vec3) math.Vec3 {
	best := p
	bestDistSq := scalar.K_FLOAT_MAX
	for _, tri := range b.triangles {
		c := tri.ClosestPoint(p)
		if d := c.DistanceSquared(p); d < bestDistSq {
			best, bestDistSq = c, d
		}
	}
	return best
}

func (b *meshBody) Bounds() shapes.Aabb { return b.bounds }

func (b *meshBody) Raycast(ray shapes.Ray) (float32, bool) {
	nearest, found := scalar.K_FLOAT_MAX, false
	for _, tri := range b.triangles {
		if t, hit := tri.Raycast(ray); hit && t < nearest {
			nearest, found = t, true
		}
	}
	if !found {
		return 0, false
	}
	return nearest, true
}
