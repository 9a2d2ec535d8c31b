// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"math/cmplx"
)

// lift applies fr to real scalars and fc to complex scalars, widening to
// 64/128 bits and narrowing back to T.
func lift[T Scalar](x T, fr func(float64) float64, fc func(complex128) complex128) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(fr(float64(v)))).(T)
	case float64:
		return any(fr(v)).(T)
	case complex64:
		return any(complex64(fc(complex128(v)))).(T)
	}

	return any(fc(any(x).(complex128))).(T)
}

// toComplex widens any scalar to complex128.
func toComplex[T Scalar](x T) complex128 {
	switch v := any(x).(type) {
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	}

	return any(x).(complex128)
}

// Magnitude reduces x to a real magnitude: |x| for reals, the norm for complexes.
func Magnitude[T Scalar](x T) float64 {
	return cmplx.Abs(toComplex(x))
}

// IsNaN reports whether x (or any component of x) is NaN.
func IsNaN[T Scalar](x T) bool {
	return cmplx.IsNaN(toComplex(x))
}

// IsInf reports whether x (or any component of x) is infinite.
func IsInf[T Scalar](x T) bool {
	return cmplx.IsInf(toComplex(x))
}

// IsFinite reports whether every component of x is finite.
func IsFinite[T Scalar](x T) bool {
	c := toComplex(x)
	return !math.IsNaN(real(c)) && !math.IsNaN(imag(c)) &&
		!math.IsInf(real(c), 0) && !math.IsInf(imag(c), 0)
}

// Pow raises x to an integer power by repeated squaring.
func Pow[T Scalar](x T, p int) T {
	n := uint(p)
	if p < 0 {
		n = uint(-(p + 1)) + 1
	}
	out := One[T]()
	for n > 0 {
		if n&1 == 1 {
			out *= x
		}
		x *= x
		n >>= 1
	}
	if p < 0 {
		return One[T]() / out
	}

	return out
}

// Sqrt returns the (principal) square root.
func Sqrt[T Scalar](x T) T {
	return lift(x, math.Sqrt, cmplx.Sqrt)
}

// Cbrt returns the real cube root for reals and the principal root for complexes.
func Cbrt[T Scalar](x T) T {
	return lift(x, math.Cbrt, func(c complex128) complex128 { return cmplx.Pow(c, 1.0/3) })
}

// Root returns the principal p-th root, x^(1/p).
func Root[T Scalar](x T, p int) T {
	switch p {
	case 2:
		return Sqrt(x)
	case 3:
		return Cbrt(x)
	}
	e := 1 / float64(p)

	return lift(x,
		func(f float64) float64 { return math.Pow(f, e) },
		func(c complex128) complex128 { return cmplx.Pow(c, complex(e, 0)) })
}

// Recip returns 1/x.
func Recip[T Scalar](x T) T {
	return One[T]() / x
}
