// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/value"
	"gonum.org/v1/gonum/cmplxs/cscalar"
	"gonum.org/v1/gonum/floats/scalar"
)

// ApproxEqual reports whether a and b agree within tol, absolutely or
// relative to the larger magnitude. Complex values are compared by the
// modulus of their difference.
func ApproxEqual[T value.Scalar, D dimension.Marker, K kind.Marker](a, b Quantity[T, D, K], tol float64) bool {
	switch x := any(a.v).(type) {
	case float32:
		return scalar.EqualWithinAbsOrRel(float64(x), float64(any(b.v).(float32)), tol, tol)
	case float64:
		return scalar.EqualWithinAbsOrRel(x, any(b.v).(float64), tol, tol)
	case complex64:
		return cscalar.EqualWithinAbsOrRel(complex128(x), complex128(any(b.v).(complex64)), tol, tol)
	case complex128:
		return cscalar.EqualWithinAbsOrRel(x, any(b.v).(complex128), tol, tol)
	}

	return false
}
