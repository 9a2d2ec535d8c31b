// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"math/cmplx"
)

// Exp returns e**x.
func Exp[T Scalar](x T) T { return lift(x, math.Exp, cmplx.Exp) }

// Exp2 returns 2**x.
func Exp2[T Scalar](x T) T {
	return lift(x, math.Exp2, func(c complex128) complex128 { return cmplx.Exp(c * math.Ln2) })
}

// Expm1 returns e**x - 1.
func Expm1[T Scalar](x T) T {
	return lift(x, math.Expm1, func(c complex128) complex128 { return cmplx.Exp(c) - 1 })
}

// Log returns the natural logarithm.
func Log[T Scalar](x T) T { return lift(x, math.Log, cmplx.Log) }

// Log1p returns ln(1 + x).
func Log1p[T Scalar](x T) T {
	return lift(x, math.Log1p, func(c complex128) complex128 { return cmplx.Log(1 + c) })
}

// Log10 returns the decimal logarithm.
func Log10[T Scalar](x T) T { return lift(x, math.Log10, cmplx.Log10) }

// Log2 returns the binary logarithm.
func Log2[T Scalar](x T) T {
	return lift(x, math.Log2, func(c complex128) complex128 { return cmplx.Log(c) / math.Ln2 })
}

// LogBase returns the logarithm of x in the given base.
func LogBase[T Scalar](x, base T) T { return Log(x) / Log(base) }

// Sin returns the sine of x (radians).
func Sin[T Scalar](x T) T { return lift(x, math.Sin, cmplx.Sin) }

// Cos returns the cosine of x (radians).
func Cos[T Scalar](x T) T { return lift(x, math.Cos, cmplx.Cos) }

// Tan returns the tangent of x (radians).
func Tan[T Scalar](x T) T { return lift(x, math.Tan, cmplx.Tan) }

// Sinh returns the hyperbolic sine.
func Sinh[T Scalar](x T) T { return lift(x, math.Sinh, cmplx.Sinh) }

// Cosh returns the hyperbolic cosine.
func Cosh[T Scalar](x T) T { return lift(x, math.Cosh, cmplx.Cosh) }

// Tanh returns the hyperbolic tangent.
func Tanh[T Scalar](x T) T { return lift(x, math.Tanh, cmplx.Tanh) }

// Acos returns the arccosine in radians.
func Acos[T Scalar](x T) T { return lift(x, math.Acos, cmplx.Acos) }

// Acosh returns the inverse hyperbolic cosine.
func Acosh[T Scalar](x T) T { return lift(x, math.Acosh, cmplx.Acosh) }

// Asin returns the arcsine in radians.
func Asin[T Scalar](x T) T { return lift(x, math.Asin, cmplx.Asin) }

// Asinh returns the inverse hyperbolic sine.
func Asinh[T Scalar](x T) T { return lift(x, math.Asinh, cmplx.Asinh) }

// Atan returns the arctangent in radians.
func Atan[T Scalar](x T) T { return lift(x, math.Atan, cmplx.Atan) }

// Atanh returns the inverse hyperbolic tangent.
func Atanh[T Scalar](x T) T { return lift(x, math.Atanh, cmplx.Atanh) }
