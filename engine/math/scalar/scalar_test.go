package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3), 0, 1))
	assert.Equal(t, float32(0), Clamp(float32(-2), 0, 1))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, 10, Clamp(42, -10, 10))
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, float32(-1), Min(float32(-1), 2))
	assert.Equal(t, float32(2), Max(float32(-1), 2))
	assert.Equal(t, int32(7), Abs(int32(-7)))
	assert.Equal(t, float32(3.5), Abs(float32(-3.5)))
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		v    uint32
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{1 << 31, true},
		{(1 << 31) + 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.v), "value %d", tt.v)
	}
}

func TestByteSwap(t *testing.T) {
	assert.Equal(t, uint16(0x3412), ByteSwap16(0x1234))
	assert.Equal(t, uint32(0x78563412), ByteSwap32(0x12345678))
	assert.Equal(t, uint64(0xefcdab8967452301), ByteSwap64(0x0123456789abcdef))
}

func TestIsClose(t *testing.T) {
	assert.True(t, IsClose(1.0, 1.0005, K_TOLERANCE))
	assert.False(t, IsClose(1.0, 1.01, K_TOLERANCE))
	assert.True(t, IsClose(-2, -2, 0))
}

func TestDegreeRadianConversion(t *testing.T) {
	assert.InDelta(t, K_PI, DegToRad(180), 1e-6)
	assert.InDelta(t, K_HALF_PI, DegToRad(90), 1e-6)
	assert.InDelta(t, 180, RadToDeg(K_PI), 1e-4)
	assert.InDelta(t, 33.0, RadToDeg(DegToRad(33)), 1e-4)
}

func TestLerpExtrapolates(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 4, 0))
	assert.Equal(t, float32(4), Lerp(2, 4, 1))
	assert.Equal(t, float32(6), Lerp(2, 4, 2))
	assert.Equal(t, float32(0), Lerp(2, 4, -1))
}

func TestNextAfter(t *testing.T) {
	assert.Equal(t, float32(1)+K_FLOAT_EPSILON, NextAfter(1, 2))
	assert.Less(t, NextAfter(1, 0), float32(1))
	assert.Equal(t, float32(3), NextAfter(3, 3))
}
