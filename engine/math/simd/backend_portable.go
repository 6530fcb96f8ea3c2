package simd

import (
	"math"

	"github.com/spaghettifunk/animath/engine/math/scalar"
)

// portable is the scalar fallback used when no instruction set is detected or
// ANIMATH_NO_SIMD is set. The other backends embed it and override only the
// operations whose hardware behaviour differs.
type portable struct{}

func (portable) name() Implementation { return ImplPortable }

func (portable) features() []string { return nil }

func (portable) add(a, b lanes) lanes {
	return lanes{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (portable) sub(a, b lanes) lanes {
	return lanes{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// mul rounds every product explicitly. Dot and Cross3 add these lanes, and
// the conversions keep the compiler from fusing those adds once inlined.
func (portable) mul(a, b lanes) lanes {
	return lanes{float32(a[0] * b[0]), float32(a[1] * b[1]), float32(a[2] * b[2]), float32(a[3] * b[3])}
}

func (portable) div(a, b lanes) lanes {
	return lanes{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// madd rounds the product before the add so the compiler cannot fuse it.
func (portable) madd(a, b, c lanes) lanes {
	return lanes{
		float32(a[0]*b[0]) + c[0],
		float32(a[1]*b[1]) + c[1],
		float32(a[2]*b[2]) + c[2],
		float32(a[3]*b[3]) + c[3],
	}
}

// min returns b for a lane when either operand is NaN, like minps.
func (portable) min(a, b lanes) lanes {
	var r lanes
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (portable) max(a, b lanes) lanes {
	var r lanes
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (portable) sqrt(a lanes) lanes {
	return lanes{scalar.Sqrt(a[0]), scalar.Sqrt(a[1]), scalar.Sqrt(a[2]), scalar.Sqrt(a[3])}
}

func (portable) recip(a lanes) lanes {
	return lanes{1 / a[0], 1 / a[1], 1 / a[2], 1 / a[3]}
}

func (p portable) recipSqrt(a lanes) lanes {
	return p.recip(p.sqrt(a))
}

// The fallback has no cheaper path, so its estimates are exact.
func (p portable) sqrtEstimate(a lanes) lanes {
	return p.sqrt(a)
}

func (p portable) recipEstimate(a lanes) lanes {
	return p.recip(a)
}

func (p portable) recipSqrtEstimate(a lanes) lanes {
	return p.recipSqrt(a)
}

func (portable) cmp(a, b lanes, op cmpOp) lanes {
	var r lanes
	for i := range r {
		var ok bool
		switch op {
		case cmpEq:
			ok = a[i] == b[i]
		case cmpNotEq:
			ok = a[i] != b[i]
		case cmpGt:
			ok = a[i] > b[i]
		case cmpGtEq:
			ok = a[i] >= b[i]
		case cmpLt:
			ok = a[i] < b[i]
		case cmpLtEq:
			ok = a[i] <= b[i]
		}
		r[i] = maskOf(ok)
	}
	return r
}

// blend picks whole lanes by the sign bit of the mask, like blendvps. The
// sign is broadcast across the lane first (psrad 31) and then fed to the
// and/andnot/or select, so every backend agrees on any mask.
func (portable) blend(a, b, mask lanes) lanes {
	var r lanes
	for i := range r {
		m := uint32(int32(math.Float32bits(mask[i])) >> 31)
		bits := (math.Float32bits(a[i]) & m) | (math.Float32bits(b[i]) &^ m)
		r[i] = math.Float32frombits(bits)
	}
	return r
}

func (portable) moveMask(a lanes) int {
	m := 0
	for i := range a {
		if laneSet(a[i]) {
			m |= 1 << i
		}
	}
	return m
}
