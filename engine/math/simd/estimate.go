package simd

import "math"

const (
	signBit     uint32 = 0x80000000
	allOnes     uint32 = 0xFFFFFFFF
	estimateLow        = 0x1p-125
	estimateHi         = 0x1p125
	minNormal          = 0x1p-126

	// rcpps/rsqrtps deliver 12 significant bits.
	sseEstimateMask uint32 = 0xFFFFF800

	recipMagic     uint32 = 0x7EF311C3
	recipSqrtMagic uint32 = 0x5F3759DF

	recipNewtonSteps     = 3
	recipSqrtNewtonSteps = 2
)

var trueMask = math.Float32frombits(allOnes)

func maskOf(b bool) float32 {
	if b {
		return trueMask
	}
	return 0
}

func laneSet(f float32) bool {
	return math.Float32bits(f)&signBit != 0
}

// inEstimateRange is false for zero, subnormals, negatives, infinities and NaN.
func inEstimateRange(x float32) bool {
	return x >= estimateLow && x <= estimateHi
}

// truncateEstimate keeps 12 significant bits of a finite normal result.
// Subnormal results already carry fewer bits and are returned as they are.
func truncateEstimate(f float32) float32 {
	if f != f || math.IsInf(float64(f), 0) || math.Abs(float64(f)) < minNormal {
		return f
	}
	return math.Float32frombits(math.Float32bits(f) & sseEstimateMask)
}

// recipBitEstimate is the vrecpe-style seed refined with vrecps steps.
func recipBitEstimate(x float32) float32 {
	ax := math.Float32frombits(math.Float32bits(x) &^ signBit)
	if !inEstimateRange(ax) {
		return 1 / x
	}
	y := math.Float32frombits(recipMagic - math.Float32bits(ax))
	for i := 0; i < recipNewtonSteps; i++ {
		y = y * (2 - float32(ax*y))
	}
	if x < 0 {
		return -y
	}
	return y
}

// recipSqrtBitEstimate is the vrsqrte-style seed refined with vrsqrts steps.
func recipSqrtBitEstimate(x float32) float32 {
	if !inEstimateRange(x) {
		return 1 / float32(math.Sqrt(float64(x)))
	}
	y := math.Float32frombits(recipSqrtMagic - (math.Float32bits(x) >> 1))
	half := 0.5 * x
	for i := 0; i < recipSqrtNewtonSteps; i++ {
		y = y * (1.5 - float32(half*float32(y*y)))
	}
	return y
}

// sqrtFromRecipSqrt computes x * rsqrt(x), patching the lanes where the
// product is undefined (zero and +Inf).
func sqrtFromRecipSqrt(x, rsqrt float32) float32 {
	if x == 0 || math.IsInf(float64(x), 1) {
		return x
	}
	return x * rsqrt
}
