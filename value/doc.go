// Package value defines the scalar contract the quantity engine is generic
// over, together with the scalar-level math it needs.
//
// A Scalar is one of float32, float64, complex64 or complex128. Every helper
// here follows the floating-point semantics of the underlying type: division
// by zero yields ±Inf, the square root of a negative real yields NaN, and so
// on. Nothing is checked and nothing panics.
//
// Helpers that only make sense on one side of the real/complex divide are
// constrained accordingly (Floor, Min, Clamp on Real; Re, Im, Arg on Complex).
package value
