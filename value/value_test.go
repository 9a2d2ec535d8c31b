package value_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvunits/value"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

// TestFromReal verifies literal construction for every scalar.
func TestFromReal(t *testing.T) {
	assert.Equal(t, float32(2.5), value.FromReal[float32](2.5))
	assert.Equal(t, 2.5, value.FromReal[float64](2.5))
	assert.Equal(t, complex64(2.5), value.FromReal[complex64](2.5))
	assert.Equal(t, complex(2.5, 0), value.FromReal[complex128](2.5))
	assert.Equal(t, complex(0, 1), value.I[complex128]())
	assert.Equal(t, 0.0, value.Zero[float64]())
	assert.Equal(t, complex64(1), value.One[complex64]())
	assert.True(t, value.IsComplex[complex64]())
	assert.False(t, value.IsComplex[float32]())
}

// TestMagnitude reduces reals to |x| and complexes to their norm.
func TestMagnitude(t *testing.T) {
	assert.Equal(t, 3.0, value.Magnitude(-3.0))
	assert.Equal(t, 5.0, value.Magnitude(complex(3, -4)))
	assert.Equal(t, 5.0, value.Magnitude(complex64(complex(-3, 4))))
}

// TestClassification covers NaN/Inf detection on both real and complex scalars.
func TestClassification(t *testing.T) {
	assert.True(t, value.IsNaN(math.NaN()))
	assert.True(t, value.IsNaN(complex(1, math.NaN())))
	assert.True(t, value.IsInf(float32(math.Inf(-1))))
	assert.True(t, value.IsFinite(complex(1, 2)))
	assert.False(t, value.IsFinite(complex(math.Inf(1), 0)))
	assert.False(t, value.IsFinite(math.NaN()))
}

// TestPowRoot checks integer powers and exact roots.
func TestPowRoot(t *testing.T) {
	assert.Equal(t, 64.0, value.Pow(4.0, 3))
	assert.Equal(t, 1.0, value.Pow(4.0, 0))
	assert.Equal(t, 0.25, value.Pow(2.0, -2))
	assert.Equal(t, 1.0, value.Pow(1.0, math.MinInt))
	assert.Equal(t, 0.0, value.Pow(2.0, math.MinInt))
	assert.Equal(t, complex(-4, 0), value.Pow(complex(0, 2), 2))

	assert.Equal(t, 4.0, value.Sqrt(16.0))
	assert.Equal(t, 4.0, value.Cbrt(64.0))
	assert.Equal(t, -2.0, value.Cbrt(-8.0))
	assert.InDelta(t, 2.0, value.Root(16.0, 4), eps)
	assert.True(t, math.IsNaN(value.Sqrt(-1.0)), "real sqrt of a negative is NaN")
	assert.Equal(t, complex(0, 1), value.Sqrt(complex(-1, 0)))
	assert.Equal(t, 0.5, value.Recip(2.0))
	assert.True(t, math.IsInf(value.Recip(0.0), 1), "1/0 follows IEEE")
}

// TestTranscendental spot-checks the real and complex branches.
func TestTranscendental(t *testing.T) {
	assert.InDelta(t, math.E, value.Exp(1.0), eps)
	assert.InDelta(t, 8.0, value.Exp2(3.0), eps)
	assert.InDelta(t, 3.0, value.Log2(8.0), eps)
	assert.InDelta(t, 2.0, value.Log10(100.0), eps)
	assert.InDelta(t, 3.0, value.LogBase(27.0, 3.0), eps)
	assert.InDelta(t, math.Pi, value.Acos(-1.0), eps)
	assert.InDelta(t, math.Pi/2, value.Asin(1.0), eps)

	z := value.Exp(complex(0, math.Pi))
	assert.InDelta(t, -1.0, real(z), eps)
	assert.InDelta(t, 0.0, imag(z), eps)
	assert.InDelta(t, 0.0, cmplx.Abs(value.Exp2(complex(3, 0))-8), eps)
	assert.InDelta(t, 0.0, cmplx.Abs(value.Log2(complex(8, 0))-3), eps)
	assert.InDelta(t, 0.0, cmplx.Abs(value.Expm1(complex(0, 0))), eps)
	assert.InDelta(t, 0.0, cmplx.Abs(value.Log1p(complex(0, 0))), eps)

	f := value.Cos(float32(0))
	assert.Equal(t, float32(1), f)
}

// TestRealHelpers covers rounding and ordering helpers.
func TestRealHelpers(t *testing.T) {
	assert.Equal(t, 1.0, value.Floor(1.7))
	assert.Equal(t, -1.0, value.Ceil(-1.7))
	assert.Equal(t, 3.0, value.Round(2.5))
	assert.InDelta(t, 0.75, value.Fract(2.75), eps)
	assert.InDelta(t, -0.75, value.Fract(-2.75), eps)
	assert.Equal(t, float32(2), value.Abs(float32(-2)))
	assert.Equal(t, 1.0, value.Min(1.0, 2.0))
	assert.Equal(t, 2.0, value.Max(1.0, 2.0))
	assert.Equal(t, 1.0, value.Clamp(0.5, 1.0, 3.0))
	assert.Equal(t, 3.0, value.Clamp(7.0, 1.0, 3.0))
	assert.Equal(t, 2.0, value.Clamp(2.0, 1.0, 3.0))
	assert.True(t, math.IsNaN(value.Clamp(math.NaN(), 1.0, 3.0)))
	assert.InDelta(t, math.Pi/4, value.Atan2(1.0, 1.0), eps)
}

// TestComplexHelpers covers component extraction and promotion.
func TestComplexHelpers(t *testing.T) {
	c := complex(3, 4)
	assert.Equal(t, 3.0, value.Re[float64](c))
	assert.Equal(t, 4.0, value.Im[float64](c))
	assert.Equal(t, 5.0, value.Norm[float64](c))
	assert.InDelta(t, math.Atan2(4, 3), value.Arg[float64](c), eps)
	assert.Equal(t, float32(3), value.Re[float32](complex64(c)))
	assert.Equal(t, complex(2, 0), value.Promote[complex128](2.0))
	assert.Equal(t, complex64(complex(2, 0)), value.Promote[complex64](float32(2)))
}
