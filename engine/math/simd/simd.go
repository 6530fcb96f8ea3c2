// Package simd provides a fixed-width, 4-lane float and integer register
// abstraction with one operation set implemented once per hardware backend.
//
// Lane order is always x, y, z, w. Every operation returns a new value; none
// mutates its receiver. The active backend is chosen at init time (see the
// dispatch_*.go files) and cannot be observed by callers except through Info,
// which exists for diagnostics only.
//
// Precision classes:
//
//   - exact: Add, Sub, Mul, Div, MulAdd, Sqrt, Reciprocal, ReciprocalSqrt.
//     Results are correctly rounded float32 values and are lane-for-lane
//     identical on every backend. Products are rounded with explicit float32
//     conversions before any add, so no multiply-add is ever fused.
//   - estimate: SqrtEstimate, ReciprocalEstimate, ReciprocalSqrtEstimate.
//     Relative error is bounded by EstimatePrecision for normal finite inputs
//     and the bit pattern may differ between backends.
//
// NaN and infinities propagate per IEEE-754; nothing here traps or sanitizes.
package simd

import (
	"os"
	"strconv"
)

// Implementation names a backend.
type Implementation string

const (
	// ImplPortable is the pure Go scalar fallback.
	ImplPortable Implementation = "portable"
	// ImplSSE follows x86 SSE-family semantics.
	ImplSSE Implementation = "sse"
	// ImplNEON follows ARM NEON semantics.
	ImplNEON Implementation = "neon"
)

// RuntimeInfo describes the active backend.
type RuntimeInfo struct {
	// Implementation is the active backend.
	Implementation Implementation
	// Features lists the CPU features the backend relies on.
	Features []string
	// Accelerated is false only for the portable fallback.
	Accelerated bool
}

// EstimatePrecision is the worst-case relative error of the estimate
// operations for normal, finite inputs (2^-11).
const EstimatePrecision float32 = 1.0 / 2048.0

// Lane masks select which lanes a CmpAll/CmpAny reduction considers.
const (
	LaneX = 1 << iota
	LaneY
	LaneZ
	LaneW

	Lanes2 = LaneX | LaneY
	Lanes3 = LaneX | LaneY | LaneZ
	Lanes4 = LaneX | LaneY | LaneZ | LaneW
)

// Lane indices for Shuffle.
const (
	X = 0
	Y = 1
	Z = 2
	W = 3
)

type lanes = [4]float32

type cmpOp int

const (
	cmpEq cmpOp = iota
	cmpNotEq
	cmpGt
	cmpGtEq
	cmpLt
	cmpLtEq
)

// backend is implemented once per instruction set. Exact operations must be
// bit-identical across implementations.
type backend interface {
	name() Implementation
	features() []string

	add(a, b lanes) lanes
	sub(a, b lanes) lanes
	mul(a, b lanes) lanes
	div(a, b lanes) lanes
	madd(a, b, c lanes) lanes
	min(a, b lanes) lanes
	max(a, b lanes) lanes

	sqrt(a lanes) lanes
	recip(a lanes) lanes
	recipSqrt(a lanes) lanes
	sqrtEstimate(a lanes) lanes
	recipEstimate(a lanes) lanes
	recipSqrtEstimate(a lanes) lanes

	cmp(a, b lanes, op cmpOp) lanes
	blend(a, b, mask lanes) lanes
	moveMask(a lanes) int
}

// active is set by init() in dispatch_*.go.
var active backend = portable{}

// Info returns information about the active backend.
func Info() RuntimeInfo {
	return RuntimeInfo{
		Implementation: active.name(),
		Features:       active.features(),
		Accelerated:    active.name() != ImplPortable,
	}
}

// NoSimdEnv reports whether ANIMATH_NO_SIMD asks for the portable backend.
func NoSimdEnv() bool {
	val := os.Getenv("ANIMATH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
