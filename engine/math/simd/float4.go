package simd

import (
	"math"

	"github.com/spaghettifunk/animath/engine/math/scalar"
)

// Float4 is an immutable 4-lane float32 register.
type Float4 struct {
	v lanes
}

// LoadFloat4 builds a register from four scalars.
func LoadFloat4(x, y, z, w float32) Float4 {
	return Float4{lanes{x, y, z, w}}
}

// SplatFloat4 copies f into every lane.
func SplatFloat4(f float32) Float4 {
	return Float4{lanes{f, f, f, f}}
}

// ZeroFloat4 returns a register with every lane set to +0.
func ZeroFloat4() Float4 {
	return Float4{}
}

// LoadFromFloat2 reads two lanes from src; z and w are zero.
func LoadFromFloat2(src []float32) Float4 {
	_ = src[1]
	return Float4{lanes{src[0], src[1], 0, 0}}
}

// LoadFromFloat3 reads three lanes from src; w is zero.
func LoadFromFloat3(src []float32) Float4 {
	_ = src[2]
	return Float4{lanes{src[0], src[1], src[2], 0}}
}

// LoadFromFloat4 reads four lanes from src.
func LoadFromFloat4(src []float32) Float4 {
	_ = src[3]
	return Float4{lanes{src[0], src[1], src[2], src[3]}}
}

// StoreToFloat2 writes the x and y lanes to dst.
func (f Float4) StoreToFloat2(dst []float32) {
	_ = dst[1]
	dst[0], dst[1] = f.v[0], f.v[1]
}

// StoreToFloat3 writes the x, y and z lanes to dst.
func (f Float4) StoreToFloat3(dst []float32) {
	_ = dst[2]
	dst[0], dst[1], dst[2] = f.v[0], f.v[1], f.v[2]
}

// StoreToFloat4 writes all four lanes to dst.
func (f Float4) StoreToFloat4(dst []float32) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = f.v[0], f.v[1], f.v[2], f.v[3]
}

// Array returns a copy of the lanes.
func (f Float4) Array() [4]float32 {
	return f.v
}

func (f Float4) X() float32 { return f.v[0] }
func (f Float4) Y() float32 { return f.v[1] }
func (f Float4) Z() float32 { return f.v[2] }
func (f Float4) W() float32 { return f.v[3] }

// Lane returns lane i (0..3).
func (f Float4) Lane(i int) float32 {
	return f.v[i]
}

func (f Float4) WithX(x float32) Float4 { f.v[0] = x; return f }
func (f Float4) WithY(y float32) Float4 { f.v[1] = y; return f }
func (f Float4) WithZ(z float32) Float4 { f.v[2] = z; return f }
func (f Float4) WithW(w float32) Float4 { f.v[3] = w; return f }

// WithLane returns a copy with lane i replaced.
func (f Float4) WithLane(i int, value float32) Float4 {
	f.v[i] = value
	return f
}

func (f Float4) Add(o Float4) Float4 { return Float4{active.add(f.v, o.v)} }
func (f Float4) Sub(o Float4) Float4 { return Float4{active.sub(f.v, o.v)} }
func (f Float4) Mul(o Float4) Float4 { return Float4{active.mul(f.v, o.v)} }
func (f Float4) Div(o Float4) Float4 { return Float4{active.div(f.v, o.v)} }

func (f Float4) MulScalar(s float32) Float4 {
	return Float4{active.mul(f.v, SplatFloat4(s).v)}
}

func (f Float4) DivScalar(s float32) Float4 {
	return Float4{active.div(f.v, SplatFloat4(s).v)}
}

// MulAdd returns f*b + c. The product is rounded before the add on every
// backend, so results never depend on FMA availability.
func (f Float4) MulAdd(b, c Float4) Float4 {
	return Float4{active.madd(f.v, b.v, c.v)}
}

// Neg flips the sign bit of every lane, so Neg(+0) is -0.
func (f Float4) Neg() Float4 {
	return f.Xor(SplatFloat4(math.Float32frombits(signBit)))
}

// Abs clears the sign bit of every lane.
func (f Float4) Abs() Float4 {
	return SplatFloat4(math.Float32frombits(signBit)).AndNot(f)
}

// Min returns the lane-wise minimum; a NaN lane in either input yields o's lane.
func (f Float4) Min(o Float4) Float4 { return Float4{active.min(f.v, o.v)} }

// Max returns the lane-wise maximum; a NaN lane in either input yields o's lane.
func (f Float4) Max(o Float4) Float4 { return Float4{active.max(f.v, o.v)} }

func (f Float4) Floor() Float4 {
	return Float4{lanes{scalar.Floor(f.v[0]), scalar.Floor(f.v[1]), scalar.Floor(f.v[2]), scalar.Floor(f.v[3])}}
}

func (f Float4) Ceil() Float4 {
	return Float4{lanes{scalar.Ceil(f.v[0]), scalar.Ceil(f.v[1]), scalar.Ceil(f.v[2]), scalar.Ceil(f.v[3])}}
}

// Sqrt is the correctly rounded square root of every lane.
func (f Float4) Sqrt() Float4 { return Float4{active.sqrt(f.v)} }

// SqrtEstimate is a reduced precision square root, see EstimatePrecision.
func (f Float4) SqrtEstimate() Float4 { return Float4{active.sqrtEstimate(f.v)} }

// Reciprocal is 1/f computed with an exact division.
func (f Float4) Reciprocal() Float4 { return Float4{active.recip(f.v)} }

// ReciprocalEstimate is a reduced precision 1/f, see EstimatePrecision.
func (f Float4) ReciprocalEstimate() Float4 { return Float4{active.recipEstimate(f.v)} }

// ReciprocalSqrt is 1/sqrt(f) built from an exact sqrt and an exact division.
func (f Float4) ReciprocalSqrt() Float4 { return Float4{active.recipSqrt(f.v)} }

// ReciprocalSqrtEstimate is a reduced precision 1/sqrt(f), see EstimatePrecision.
func (f Float4) ReciprocalSqrtEstimate() Float4 { return Float4{active.recipSqrtEstimate(f.v)} }

// Dot2 sums the products of the x and y lanes.
func (f Float4) Dot2(o Float4) float32 {
	p := active.mul(f.v, o.v)
	return p[0] + p[1]
}

// Dot3 sums the products of the x, y and z lanes as (x + y) + z.
func (f Float4) Dot3(o Float4) float32 {
	p := active.mul(f.v, o.v)
	return (p[0] + p[1]) + p[2]
}

// Dot4 sums the products of all lanes as (x + y) + (z + w).
func (f Float4) Dot4(o Float4) float32 {
	p := active.mul(f.v, o.v)
	return (p[0] + p[1]) + (p[2] + p[3])
}

// Cross3 is the 3-D cross product of the x, y and z lanes. The w lane is zero.
func (f Float4) Cross3(o Float4) Float4 {
	a := active.mul(f.Shuffle(Y, Z, X, W).v, o.Shuffle(Z, X, Y, W).v)
	b := active.mul(f.Shuffle(Z, X, Y, W).v, o.Shuffle(Y, Z, X, W).v)
	return Float4{active.sub(a, b)}.WithW(0)
}

// HorizontalMin3 returns the smallest of the x, y and z lanes.
func (f Float4) HorizontalMin3() float32 {
	m := active.min(f.v, f.Shuffle(Y, Z, X, W).v)
	m = active.min(m, f.Shuffle(Z, X, Y, W).v)
	return m[0]
}

// HorizontalMax3 returns the largest of the x, y and z lanes.
func (f Float4) HorizontalMax3() float32 {
	m := active.max(f.v, f.Shuffle(Y, Z, X, W).v)
	m = active.max(m, f.Shuffle(Z, X, Y, W).v)
	return m[0]
}

func (f Float4) CmpEq(o Float4) Float4    { return Float4{active.cmp(f.v, o.v, cmpEq)} }
func (f Float4) CmpNotEq(o Float4) Float4 { return Float4{active.cmp(f.v, o.v, cmpNotEq)} }
func (f Float4) CmpGt(o Float4) Float4    { return Float4{active.cmp(f.v, o.v, cmpGt)} }
func (f Float4) CmpGtEq(o Float4) Float4  { return Float4{active.cmp(f.v, o.v, cmpGtEq)} }
func (f Float4) CmpLt(o Float4) Float4    { return Float4{active.cmp(f.v, o.v, cmpLt)} }
func (f Float4) CmpLtEq(o Float4) Float4  { return Float4{active.cmp(f.v, o.v, cmpLtEq)} }

// Select takes each lane from a where the mask lane's sign bit is set and
// from b otherwise. Comparison masks are all-ones or all-zeros, but any
// mask selects the same lanes on every backend.
func Select(a, b, mask Float4) Float4 {
	return Float4{active.blend(a.v, b.v, mask.v)}
}

// MoveMask packs the sign bit of lane i into bit i of the result.
func (f Float4) MoveMask() int {
	return active.moveMask(f.v)
}

func (f Float4) And(o Float4) Float4 {
	return f.bitwise(o, func(a, b uint32) uint32 { return a & b })
}

func (f Float4) Or(o Float4) Float4 {
	return f.bitwise(o, func(a, b uint32) uint32 { return a | b })
}

func (f Float4) Xor(o Float4) Float4 {
	return f.bitwise(o, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot computes ^f & o, matching andnps operand order.
func (f Float4) AndNot(o Float4) Float4 {
	return f.bitwise(o, func(a, b uint32) uint32 { return ^a & b })
}

func (f Float4) bitwise(o Float4, op func(a, b uint32) uint32) Float4 {
	var r lanes
	for i := range r {
		r[i] = math.Float32frombits(op(math.Float32bits(f.v[i]), math.Float32bits(o.v[i])))
	}
	return Float4{r}
}

// Shuffle returns {f[ix], f[iy], f[iz], f[iw]}.
func (f Float4) Shuffle(ix, iy, iz, iw int) Float4 {
	return Float4{lanes{f.v[ix], f.v[iy], f.v[iz], f.v[iw]}}
}

func (f Float4) SplatX() Float4 { return SplatFloat4(f.v[0]) }
func (f Float4) SplatY() Float4 { return SplatFloat4(f.v[1]) }
func (f Float4) SplatZ() Float4 { return SplatFloat4(f.v[2]) }
func (f Float4) SplatW() Float4 { return SplatFloat4(f.v[3]) }

// ConvertToInt4 truncates every lane toward zero. Lanes that are NaN or out of
// int32 range become math.MinInt32, like cvttps2dq.
func (f Float4) ConvertToInt4() Int4 {
	var r [4]int32
	for i, x := range f.v {
		r[i] = floatToInt32(float64(x), math.Trunc)
	}
	return Int4{r}
}

// ConvertToInt4Round rounds every lane to the nearest integer, ties to even.
func (f Float4) ConvertToInt4Round() Int4 {
	var r [4]int32
	for i, x := range f.v {
		r[i] = floatToInt32(float64(x), math.RoundToEven)
	}
	return Int4{r}
}

// CastToInt4 reinterprets the lane bits as integers.
func (f Float4) CastToInt4() Int4 {
	var r [4]int32
	for i, x := range f.v {
		r[i] = int32(math.Float32bits(x))
	}
	return Int4{r}
}

func floatToInt32(x float64, round func(float64) float64) int32 {
	x = round(x)
	if x != x || x >= 1<<31 || x < -(1<<31) {
		return math.MinInt32
	}
	return int32(x)
}

// CmpAllEq reports whether every lane selected by laneMask has f == o.
func CmpAllEq(a, b Float4, laneMask int) bool {
	return a.CmpEq(b).MoveMask()&laneMask == laneMask
}

// CmpAllLt reports whether every lane selected by laneMask has a < b.
func CmpAllLt(a, b Float4, laneMask int) bool {
	return a.CmpLt(b).MoveMask()&laneMask == laneMask
}

// CmpAllLtEq reports whether every lane selected by laneMask has a <= b.
// Lanes outside laneMask, such as the padding lane of a 3-D vector, are ignored.
func CmpAllLtEq(a, b Float4, laneMask int) bool {
	return a.CmpLtEq(b).MoveMask()&laneMask == laneMask
}

// CmpAllGt reports whether every lane selected by laneMask has a > b.
func CmpAllGt(a, b Float4, laneMask int) bool {
	return a.CmpGt(b).MoveMask()&laneMask == laneMask
}

// CmpAllGtEq reports whether every lane selected by laneMask has a >= b.
func CmpAllGtEq(a, b Float4, laneMask int) bool {
	return a.CmpGtEq(b).MoveMask()&laneMask == laneMask
}

// CmpAnyEq reports whether any lane selected by laneMask has a == b.
func CmpAnyEq(a, b Float4, laneMask int) bool {
	return a.CmpEq(b).MoveMask()&laneMask != 0
}

// CmpAnyLt reports whether any lane selected by laneMask has a < b.
func CmpAnyLt(a, b Float4, laneMask int) bool {
	return a.CmpLt(b).MoveMask()&laneMask != 0
}

// CmpAnyGt reports whether any lane selected by laneMask has a > b.
func CmpAnyGt(a, b Float4, laneMask int) bool {
	return a.CmpGt(b).MoveMask()&laneMask != 0
}
