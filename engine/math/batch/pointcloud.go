// Package batch processes many points at once. Points are stored as separate
// x, y and z slices so the vek32 kernels can run over each axis.
package batch

import (
	"github.com/viterin/vek/vek32"

	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

type PointCloud struct {
	xs []float32
	ys []float32
	zs []float32
}

func NewPointCloud(capacity int) *PointCloud {
	return &PointCloud{
		xs: make([]float32, 0, capacity),
		ys: make([]float32, 0, capacity),
		zs: make([]float32, 0, capacity),
	}
}

func NewPointCloudFromPoints(points []math.Vec3) *PointCloud {
	pc := NewPointCloud(len(points))
	pc.Append(points...)
	return pc
}

func (pc *PointCloud) Append(points ...math.Vec3) {
	for _, p := range points {
		pc.xs = append(pc.xs, p.X())
		pc.ys = append(pc.ys, p.Y())
		pc.zs = append(pc.zs, p.Z())
	}
}

func (pc *PointCloud) Len() int { return len(pc.xs) }

func (pc *PointCloud) At(i int) math.Vec3 {
	return math.NewVec3(pc.xs[i], pc.ys[i], pc.zs[i])
}

// Points copies the cloud out as vectors.
func (pc *PointCloud) Points() []math.Vec3 {
	out := make([]math.Vec3, pc.Len())
	for i := range out {
		out[i] = pc.At(i)
	}
	return out
}

// Bounds returns the null box for an empty cloud.
func (pc *PointCloud) Bounds() shapes.Aabb {
	if pc.Len() == 0 {
		return shapes.NewAabbNull()
	}
	return shapes.NewAabbFromMinMax(
		math.NewVec3(vek32.Min(pc.xs), vek32.Min(pc.ys), vek32.Min(pc.zs)),
		math.NewVec3(vek32.Max(pc.xs), vek32.Max(pc.ys), vek32.Max(pc.zs)),
	)
}

// Centroid is the mean of all points, or the origin for an empty cloud.
func (pc *PointCloud) Centroid() math.Vec3 {
	n := float32(pc.Len())
	if n == 0 {
		return math.NewVec3Zero()
	}
	return math.NewVec3(vek32.Sum(pc.xs)/n, vek32.Sum(pc.ys)/n, vek32.Sum(pc.zs)/n)
}

func (pc *PointCloud) Translate(offset math.Vec3) {
	if pc.Len() == 0 {
		return
	}
	vek32.AddNumber_Inplace(pc.xs, offset.X())
	vek32.AddNumber_Inplace(pc.ys, offset.Y())
	vek32.AddNumber_Inplace(pc.zs, offset.Z())
}

// Scale multiplies every point componentwise, about the origin.
func (pc *PointCloud) Scale(factor math.Vec3) {
	if pc.Len() == 0 {
		return
	}
	vek32.MulNumber_Inplace(pc.xs, factor.X())
	vek32.MulNumber_Inplace(pc.ys, factor.Y())
	vek32.MulNumber_Inplace(pc.zs, factor.Z())
}

// Transform applies m to every point (w = 1).
func (pc *PointCloud) Transform(m math.Mat4) {
	for i := range pc.xs {
		p := pc.At(i).Transform(m)
		pc.xs[i], pc.ys[i], pc.zs[i] = p.X(), p.Y(), p.Z()
	}
}

// DistancesSquared returns the squared distance from p to every point.
func (pc *PointCloud) DistancesSquared(p math.Vec3) []float32 {
	if pc.Len() == 0 {
		return nil
	}
	dx := vek32.SubNumber(pc.xs, p.X())
	dy := vek32.SubNumber(pc.ys, p.Y())
	dz := vek32.SubNumber(pc.zs, p.Z())
	vek32.Mul_Inplace(dx, dx)
	vek32.Mul_Inplace(dy, dy)
	vek32.Mul_Inplace(dz, dz)
	vek32.Add_Inplace(dx, dy)
	vek32.Add_Inplace(dx, dz)
	return dx
}

// Nearest returns the index of the point closest to p and its squared
// distance, or -1 for an empty cloud.
func (pc *PointCloud) Nearest(p math.Vec3) (int, float32) {
	d := pc.DistancesSquared(p)
	if len(d) == 0 {
		return -1, 0
	}
	i := vek32.ArgMin(d)
	return i, d[i]
}

// CountInside counts the points contained in box.
func (pc *PointCloud) CountInside(box shapes.Aabb) int {
	n := 0
	for i := range pc.xs {
		if box.Contains(pc.At(i)) {
			n++
		}
	}
	return n
}
