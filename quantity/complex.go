// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/value"
)

// Re returns the real part, keeping dimension and kind.
func Re[R value.Real, C value.Complex, D dimension.Marker, K kind.Marker](q Quantity[C, D, K]) Quantity[R, D, K] {
	return Quantity[R, D, K]{v: value.Re[R](q.v)}
}

// Im returns the imaginary part, keeping dimension and kind.
func Im[R value.Real, C value.Complex, D dimension.Marker, K kind.Marker](q Quantity[C, D, K]) Quantity[R, D, K] {
	return Quantity[R, D, K]{v: value.Im[R](q.v)}
}

// Norm returns the modulus, keeping dimension and kind.
func Norm[R value.Real, C value.Complex, D dimension.Marker, K kind.Marker](q Quantity[C, D, K]) Quantity[R, D, K] {
	return Quantity[R, D, K]{v: value.Norm[R](q.v)}
}

// Arg returns the phase as a dimensionless angle.
func Arg[R value.Real, C value.Complex, D dimension.Marker, K kind.Marker](q Quantity[C, D, K]) Ratio[R, kind.AngleKind] {
	return Ratio[R, kind.AngleKind]{v: value.Arg[R](q.v)}
}

// Promote lifts a real quantity into the complex domain with zero imaginary
// part. Mixed sums are written Add(Promote[complex128](a), b).
func Promote[C value.Complex, R value.Real, D dimension.Marker, K kind.Marker](q Quantity[R, D, K]) Quantity[C, D, K] {
	return Quantity[C, D, K]{v: value.Promote[C](q.v)}
}

// Conj returns the complex conjugate.
func Conj[C value.Complex, D dimension.Marker, K kind.Marker](q Quantity[C, D, K]) Quantity[C, D, K] {
	c := complex128(q.v)
	return Quantity[C, D, K]{v: C(complex(real(c), -imag(c)))}
}
