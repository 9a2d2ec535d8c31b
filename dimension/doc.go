// Package dimension implements the dimension vector algebra of lvunits.
//
// 🚀 What is a dimension?
//
//	Every physical quantity is a product of powers of the seven SI base
//	dimensions:
//
//	  dim Q = L^a · M^b · T^c · I^d · Θ^e · N^f · J^g
//
//	A Vector stores the seven integer exponents (a..g). Velocity is L·T⁻¹,
//	energy is L²·M·T⁻², a ratio of two lengths is dimensionless (all zero).
//
// ✨ The algebra is closed and tiny:
//   - Mul: compose (element-wise sum), used when multiplying quantities
//   - Div: decompose (element-wise difference), used when dividing
//   - Inv: invert (negation), used for reciprocals
//   - Pow: scale by an integer power
//   - Root: exact division by an integer; fails with ErrNotDivisible unless
//     every exponent is a multiple of the root (sqrt needs even exponents,
//     cbrt multiples of three)
//
// No other manipulation of a Vector is offered; callers never touch the
// exponents pointwise.
//
// ⚙️ Markers:
//
//	Quantities carry their dimension as a type parameter. A Marker is a
//	zero-size type whose Dimension method returns a constant Vector:
//
//	  type AreaDim struct{}
//	  func (AreaDim) Dimension() dimension.Vector { return area }
//
//	The base markers (Length, Mass, ..., Dimensionless) live here; derived
//	markers live next to the quantities that use them (see package si).
package dimension
