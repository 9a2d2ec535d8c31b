// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Transcendental functions on dimensionless quantities.
//   - Inverse trigonometric functions produce angles; the rest drop the kind.

package quantity

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/value"
)

// Ratio is a dimensionless quantity of kind K.
type Ratio[T value.Scalar, K kind.Marker] = Quantity[T, dimension.Dimensionless, K]

func mapPlain[T value.Scalar, K kind.Marker](q Ratio[T, K], f func(T) T) Ratio[T, kind.UnitKind] {
	return Ratio[T, kind.UnitKind]{v: f(q.v)}
}

func mapAngle[T value.Scalar, K kind.Marker](q Ratio[T, K], f func(T) T) Ratio[T, kind.AngleKind] {
	return Ratio[T, kind.AngleKind]{v: f(q.v)}
}

// Exp returns eˣ.
func Exp[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Exp[T]) }

// Exp2 returns 2ˣ.
func Exp2[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Exp2[T]) }

// Expm1 returns eˣ - 1.
func Expm1[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Expm1[T]) }

// Ln returns the natural logarithm.
func Ln[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Log[T]) }

// Ln1p returns ln(1 + x).
func Ln1p[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Log1p[T]) }

// Log10 returns the decimal logarithm.
func Log10[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Log10[T]) }

// Log2 returns the binary logarithm.
func Log2[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Log2[T]) }

// Log returns the logarithm to the given base.
func Log[T value.Scalar, K kind.Marker](q Ratio[T, K], base T) Ratio[T, kind.UnitKind] {
	return Ratio[T, kind.UnitKind]{v: value.LogBase(q.v, base)}
}

// Sin returns the sine; q is taken in radians.
func Sin[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Sin[T]) }

// Cos returns the cosine; q is taken in radians.
func Cos[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Cos[T]) }

// Tan returns the tangent; q is taken in radians.
func Tan[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Tan[T]) }

// Sinh returns the hyperbolic sine.
func Sinh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Sinh[T]) }

// Cosh returns the hyperbolic cosine.
func Cosh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Cosh[T]) }

// Tanh returns the hyperbolic tangent.
func Tanh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.UnitKind] { return mapPlain(q, value.Tanh[T]) }

// Acos returns the arc cosine as an angle.
func Acos[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Acos[T]) }

// Acosh returns the inverse hyperbolic cosine as an angle.
func Acosh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Acosh[T]) }

// Asin returns the arc sine as an angle.
func Asin[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Asin[T]) }

// Asinh returns the inverse hyperbolic sine as an angle.
func Asinh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Asinh[T]) }

// Atan returns the arc tangent as an angle.
func Atan[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Atan[T]) }

// Atanh returns the inverse hyperbolic tangent as an angle.
func Atanh[T value.Scalar, K kind.Marker](q Ratio[T, K]) Ratio[T, kind.AngleKind] { return mapAngle(q, value.Atanh[T]) }

// Atan2 returns the angle of the point (x, y). Both coordinates share one
// dimension, so their ratio is dimensionless.
func Atan2[T value.Real, D dimension.Marker, K kind.Marker](y, x Quantity[T, D, K]) Ratio[T, kind.AngleKind] {
	return Ratio[T, kind.AngleKind]{v: value.Atan2(y.v, x.v)}
}
