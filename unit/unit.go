// SPDX-License-Identifier: MIT

package unit

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/value"
)

// Unit describes a unit independently of any quantity.
// The zero value is not a valid unit.
type Unit struct {
	long  string
	print string
	doc   string
}

// New returns a descriptor. long is the canonical name ("metre"), print the
// symbol used in output ("m").
func New(long, print, doc string) Unit {
	return Unit{long: long, print: print, doc: doc}
}

// LongName returns the canonical name.
func (u Unit) LongName() string { return u.long }

// PrintName returns the display symbol.
func (u Unit) PrintName() string { return u.print }

// Doc returns the human description.
func (u Unit) Doc() string { return u.doc }

// String returns the print name.
func (u Unit) String() string { return u.print }

// Validate reports ErrEmptyName when a name is missing.
func (u Unit) Validate() error {
	if u.long == "" || u.print == "" {
		return errors.Wrapf(ErrEmptyName, "long=%q print=%q", u.long, u.print)
	}

	return nil
}

// Conversion is the affine map between a unit and its quantity's base unit.
type Conversion struct {
	Factor float64
	Offset float64
}

// Identity is the conversion of every base unit.
var Identity = Conversion{Factor: 1}

// IsIdentity reports whether c is the base-unit conversion.
func (c Conversion) IsIdentity() bool { return c == Identity }

// Validate checks that Factor is finite and non-zero and Offset is finite.
func (c Conversion) Validate() error {
	if c.Factor == 0 || math.IsNaN(c.Factor) || math.IsInf(c.Factor, 0) {
		return errors.Wrapf(ErrInvalidFactor, "%v", c.Factor)
	}
	if math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) {
		return errors.Wrapf(ErrInvalidOffset, "%v", c.Offset)
	}

	return nil
}

// Between converts x from one unit to another of the same quantity by way of
// the base unit.
func Between[T value.Scalar](x T, from, to Conversion) T {
	return FromBase(to, ToBase(from, x))
}

// ToBase maps x expressed in c's unit to the base unit: (x + Offset) * Factor.
func ToBase[T value.Scalar](c Conversion, x T) T {
	if c.Offset != 0 {
		x += value.FromReal[T](c.Offset)
	}

	return x * value.FromReal[T](c.Factor)
}

// FromBase maps a base-unit value into c's unit: b / Factor - Offset.
func FromBase[T value.Scalar](c Conversion, b T) T {
	x := b / value.FromReal[T](c.Factor)
	if c.Offset != 0 {
		x -= value.FromReal[T](c.Offset)
	}

	return x
}
