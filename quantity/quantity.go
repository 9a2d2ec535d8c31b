// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - The Quantity value type, construction from raw numbers or units, and the
//     operations that need no dimension or kind checks beyond the type system.
//
// Contract:
//   - Quantities are immutable values; every operation returns a new one.
//   - The stored magnitude is always in the base unit of D.

package quantity

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/katalvlaran/lvunits/value"
)

// Quantity is a magnitude of scalar type T in the base unit of dimension D,
// tagged with kind K. The zero value is zero base units.
type Quantity[T value.Scalar, D dimension.Marker, K kind.Marker] struct {
	v T
}

// FromBase wraps a magnitude already expressed in base units.
func FromBase[D dimension.Marker, K kind.Marker, T value.Scalar](x T) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: x}
}

// New converts x from unit u to base units.
func New[T value.Scalar, D dimension.Marker, K kind.Marker](x T, u unit.Of[D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: unit.ToBase(u.Conversion(), x)}
}

// In returns the magnitude expressed in unit u.
func (q Quantity[T, D, K]) In(u unit.Of[D, K]) T {
	return unit.FromBase(u.Conversion(), q.v)
}

// Base returns the magnitude in base units.
func (q Quantity[T, D, K]) Base() T { return q.v }

// Display pairs the magnitude in u with u's print name; the result implements
// fmt.Formatter, so "%.2v" prints two decimals.
func (q Quantity[T, D, K]) Display(u unit.Of[D, K]) unit.Formatted[T] {
	return unit.Display(q.In(u), u.Descriptor())
}

// String renders the base magnitude followed by the base-unit composition of
// D, e.g. "9.81 m·s⁻²". Dimensionless quantities print the bare number.
func (q Quantity[T, D, K]) String() string {
	d := q.Dimension()
	if d.IsDimensionless() {
		return fmt.Sprint(q.v)
	}

	return fmt.Sprintf("%v %s", q.v, d.BaseUnits())
}

// Dimension returns the dimension vector of D.
func (Quantity[T, D, K]) Dimension() dimension.Vector {
	var d D
	return d.Dimension()
}

// Kind returns the kind ID of K.
func (Quantity[T, D, K]) Kind() kind.ID {
	var k K
	return k.Kind()
}

// DropKind relaxes the kind to the neutral kind. There is no inverse; use a
// constructed operation to reach a specific kind.
func (q Quantity[T, D, K]) DropKind() Quantity[T, D, kind.UnitKind] {
	return Quantity[T, D, kind.UnitKind]{v: q.v}
}

// Neg returns -q.
func (q Quantity[T, D, K]) Neg() Quantity[T, D, K] { return Quantity[T, D, K]{v: -q.v} }

// Scale multiplies q by a dimensionless scalar.
func (q Quantity[T, D, K]) Scale(s T) Quantity[T, D, K] { return Quantity[T, D, K]{v: q.v * s} }

// DivScalar divides q by a dimensionless scalar.
func (q Quantity[T, D, K]) DivScalar(s T) Quantity[T, D, K] { return Quantity[T, D, K]{v: q.v / s} }

// IsFinite reports whether the magnitude is finite.
func (q Quantity[T, D, K]) IsFinite() bool { return value.IsFinite(q.v) }

// IsNaN reports whether the magnitude is NaN.
func (q Quantity[T, D, K]) IsNaN() bool { return value.IsNaN(q.v) }

// IsInf reports whether the magnitude is infinite.
func (q Quantity[T, D, K]) IsInf() bool { return value.IsInf(q.v) }

// Add returns a + b for two quantities of one neutral-kind type.
// Kinded sums go through NewAdd.
func Add[T value.Scalar, D dimension.Marker](a, b Quantity[T, D, kind.UnitKind]) Quantity[T, D, kind.UnitKind] {
	return Quantity[T, D, kind.UnitKind]{v: a.v + b.v}
}

// Sub returns a - b for two quantities of one neutral-kind type.
func Sub[T value.Scalar, D dimension.Marker](a, b Quantity[T, D, kind.UnitKind]) Quantity[T, D, kind.UnitKind] {
	return Quantity[T, D, kind.UnitKind]{v: a.v - b.v}
}

// Sum adds any number of neutral-kind quantities of one type.
func Sum[T value.Scalar, D dimension.Marker](qs ...Quantity[T, D, kind.UnitKind]) Quantity[T, D, kind.UnitKind] {
	var s T
	for _, q := range qs {
		s += q.v
	}

	return Quantity[T, D, kind.UnitKind]{v: s}
}
