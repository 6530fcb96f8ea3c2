package simd

import "math"

// Int4 is an immutable 4-lane int32 register. Integer lanes wrap on overflow.
type Int4 struct {
	v [4]int32
}

func LoadInt4(x, y, z, w int32) Int4 {
	return Int4{[4]int32{x, y, z, w}}
}

func SplatInt4(i int32) Int4 {
	return Int4{[4]int32{i, i, i, i}}
}

func ZeroInt4() Int4 {
	return Int4{}
}

func (i Int4) X() int32 { return i.v[0] }
func (i Int4) Y() int32 { return i.v[1] }
func (i Int4) Z() int32 { return i.v[2] }
func (i Int4) W() int32 { return i.v[3] }

func (i Int4) Lane(n int) int32 {
	return i.v[n]
}

func (i Int4) Array() [4]int32 {
	return i.v
}

func (i Int4) Add(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return a + b }) }
func (i Int4) Sub(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return a - b }) }
func (i Int4) Mul(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return a * b }) }
func (i Int4) And(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return a & b }) }
func (i Int4) Or(o Int4) Int4  { return i.lanewise(o, func(a, b int32) int32 { return a | b }) }
func (i Int4) Xor(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return a ^ b }) }

// AndNot computes ^i & o.
func (i Int4) AndNot(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return ^a & b }) }

func (i Int4) Min(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return min(a, b) }) }
func (i Int4) Max(o Int4) Int4 { return i.lanewise(o, func(a, b int32) int32 { return max(a, b) }) }

func (i Int4) ShiftLeft(n uint) Int4 {
	var r [4]int32
	for k, a := range i.v {
		r[k] = a << n
	}
	return Int4{r}
}

// ShiftRight is an arithmetic shift (sign extending).
func (i Int4) ShiftRight(n uint) Int4 {
	var r [4]int32
	for k, a := range i.v {
		r[k] = a >> n
	}
	return Int4{r}
}

// ShiftRightLogical shifts in zero bits.
func (i Int4) ShiftRightLogical(n uint) Int4 {
	var r [4]int32
	for k, a := range i.v {
		r[k] = int32(uint32(a) >> n)
	}
	return Int4{r}
}

func (i Int4) CmpEq(o Int4) Int4 { return i.cmp(o, func(a, b int32) bool { return a == b }) }
func (i Int4) CmpGt(o Int4) Int4 { return i.cmp(o, func(a, b int32) bool { return a > b }) }
func (i Int4) CmpLt(o Int4) Int4 { return i.cmp(o, func(a, b int32) bool { return a < b }) }

// SelectInt4 takes each lane from a where mask is set and from b otherwise.
func SelectInt4(a, b, mask Int4) Int4 {
	var r [4]int32
	for k := range r {
		r[k] = (a.v[k] & mask.v[k]) | (b.v[k] &^ mask.v[k])
	}
	return Int4{r}
}

// MoveMask packs the sign bit of lane i into bit i of the result.
func (i Int4) MoveMask() int {
	m := 0
	for k, a := range i.v {
		if a < 0 {
			m |= 1 << k
		}
	}
	return m
}

// ConvertToFloat4 converts every lane to the nearest float32.
func (i Int4) ConvertToFloat4() Float4 {
	return Float4{lanes{float32(i.v[0]), float32(i.v[1]), float32(i.v[2]), float32(i.v[3])}}
}

// CastToFloat4 reinterprets the lane bits as floats.
func (i Int4) CastToFloat4() Float4 {
	var r lanes
	for k, a := range i.v {
		r[k] = math.Float32frombits(uint32(a))
	}
	return Float4{r}
}

func (i Int4) lanewise(o Int4, op func(a, b int32) int32) Int4 {
	var r [4]int32
	for k := range r {
		r[k] = op(i.v[k], o.v[k])
	}
	return Int4{r}
}

func (i Int4) cmp(o Int4, pred func(a, b int32) bool) Int4 {
	var r [4]int32
	for k := range r {
		if pred(i.v[k], o.v[k]) {
			r[k] = -1
		}
	}
	return Int4{r}
}
