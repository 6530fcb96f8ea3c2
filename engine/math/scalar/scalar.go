package scalar

import (
	"math"
	"math/bits"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float32 = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE float32 = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY float32 = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief The largest finite float32. Used by the null bounding box sentinel. */
	K_FLOAT_MAX float32 = math.MaxFloat32
	/** @brief Default tolerance for closeness checks. */
	K_TOLERANCE float32 = 0.001
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of any signed number.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// IsClose reports whether a and b differ by no more than tolerance.
func IsClose(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// ByteSwap16 reverses the byte order of v.
func ByteSwap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ByteSwap32 reverses the byte order of v.
func ByteSwap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// ByteSwap64 reverses the byte order of v.
func ByteSwap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Lerp returns a + (b - a) * t without clamping t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func Sin(x float32) float32 {
	return math32.Sin(x)
}

func Cos(x float32) float32 {
	return math32.Cos(x)
}

func Tan(x float32) float32 {
	return math32.Tan(x)
}

func Acos(x float32) float32 {
	return math32.Acos(x)
}

func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

func Fabs(x float32) float32 {
	return math32.Abs(x)
}

// NextAfter returns the next representable float32 after x towards y.
func NextAfter(x, y float32) float32 {
	return math32.Nextafter(x, y)
}

func Floor(x float32) float32 {
	return math32.Floor(x)
}

func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

func Inf(sign int) float32 {
	return math32.Inf(sign)
}

func NaN() float32 {
	return math32.NaN()
}

// SinCos returns sin(x) and cos(x).
func SinCos(x float32) (float32, float32) {
	return math32.Sin(x), math32.Cos(x)
}
