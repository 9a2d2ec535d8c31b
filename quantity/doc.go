// Package quantity is the generic quantity engine.
//
// ⚙️ What
//
// Quantity[T, D, K] holds a magnitude of scalar type T in the base unit of
// dimension D, tagged with kind K. D and K are zero-size marker types, so a
// quantity occupies exactly the memory of its scalar and copies as cheaply.
//
//	l := quantity.New(4.0, si.Metre)           // Quantity[float64, si.LengthDim, kind.UnitKind]
//	fmt.Println(l.In(si.Kilometre))            // 0.004
//
// 🔒 What the compiler checks
//
//   - Add and Sub accept only two values of one quantity type with the neutral
//     kind, so length + mass does not compile.
//   - New, In and Display accept only units bound to the same (D, K).
//   - Transcendental functions accept only dimensionless quantities.
//
// 🧮 What is checked once, at construction
//
// Products, quotients, powers, roots and kind-specific sums change the
// dimension or kind, which Go cannot compute at the type level. Those
// operations are values built by NewMul, NewDiv, NewPow, NewRoot, NewSqrt,
// NewCbrt, NewRecip, NewAdd and NewSub. The constructor validates dimensions
// and kinds and returns an error naming the mismatch; Apply on a constructed
// operation never fails:
//
//	var area = quantity.MustMul[si.Length64, si.Length64, si.Area64]()
//	a := area.Apply(l, l)
//
// Must variants panic and are meant for package-level variables, like
// regexp.MustCompile.
//
// Errors wrap ErrDimensionMismatch, ErrKindMismatch, kind.ErrNoRule or the
// dimension sentinels and carry a hint. Scalar domain errors (log of a
// negative real, division by zero) follow IEEE-754 and are not reported.
package quantity
