// Package unit implements unit descriptors, affine conversion to and from base
// units, decimal metric prefixes and a few display helpers.
//
// 📐 Model
//
// A Unit is an immutable descriptor: long name, print name and a doc string.
// An Of[D, K] binds a descriptor to exactly one (dimension, kind) pair and
// carries its Conversion:
//
//	base  = (x + Offset) * Factor
//	x     = base / Factor - Offset
//
// The base unit of a quantity has Factor 1 and Offset 0. Units with an offset
// (Celsius, Fahrenheit) are affine; prefixing keeps the root offset.
//
// 🔢 Prefixes
//
// The 22 decimal prefixes from quecto (10⁻³⁰) to quetta (10³⁰), deca and hecto
// excluded, plus NoPrefix. Prefixed derives "kilometre"/"km" from
// "metre"/"m"; Family returns all 23 members. A unit may name a different
// prefix root: Kilogram is the mass base but prefixes apply to Gram.
//
// 🖨️ Display
//
// FindPrefix picks an engineering prefix (steps of 10³) for a raw number, and
// Formatted renders "<magnitude> <print name>" honouring %.Nv precision.
package unit
