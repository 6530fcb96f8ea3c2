// Package math provides the engine's vector, quaternion and matrix value types.
//
// Every type wraps simd registers and derives its scalar components on demand,
// so a component can never disagree with the register it came from. All
// operations return new values.
//
// Matrices follow the row-vector convention (p' = p * M) with row-major
// storage, except Mat34 which stores an affine transform as three rows and
// transforms column vectors (see mat34.go).
package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

// Helpers shared by Vec2, Vec3 and Vec4. laneMask selects the live lanes.

func isClose(a, b simd.Float4, tolerance float32, laneMask int) bool {
	diff := a.Sub(b).Abs()
	return simd.CmpAllLtEq(diff, simd.SplatFloat4(tolerance), laneMask)
}

func normalizeExact(v simd.Float4, lengthSq float32) simd.Float4 {
	return v.DivScalar(scalar.Sqrt(lengthSq))
}

func normalizeEstimate(v simd.Float4, lengthSq float32) simd.Float4 {
	return v.Mul(simd.SplatFloat4(lengthSq).ReciprocalSqrtEstimate())
}

func lerp(a, b simd.Float4, t float32) simd.Float4 {
	return b.Sub(a).MulAdd(simd.SplatFloat4(t), a)
}

func clampLanes(v, low, high simd.Float4) simd.Float4 {
	return v.Max(low).Min(high)
}
