// SPDX-License-Identifier: MIT

package value

// Real is the set of real floating magnitudes.
type Real interface {
	float32 | float64
}

// Complex is the set of complex floating magnitudes.
type Complex interface {
	complex64 | complex128
}

// Scalar is any magnitude a quantity can hold.
type Scalar interface {
	Real | Complex
}

// FromReal converts a real literal into T (imaginary part zero for complex T).
func FromReal[T Scalar](x float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(x)).(T)
	case float64:
		return any(x).(T)
	case complex64:
		return any(complex(float32(x), 0)).(T)
	}

	return any(complex(x, 0)).(T)
}

// Zero returns the additive identity.
func Zero[T Scalar]() T {
	var z T
	return z
}

// One returns the multiplicative identity.
func One[T Scalar]() T {
	return FromReal[T](1)
}

// I returns the imaginary unit.
func I[C Complex]() C {
	return C(complex(0, 1))
}

// IsComplex reports whether T is a complex type.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}

	return false
}
