// SPDX-License-Identifier: MIT
// Package: unit
//
// Purpose:
//   - Of[D, K] binds a descriptor to one (dimension, kind) pair. Passing a unit
//     of the wrong quantity to a quantity constructor or accessor is a compile
//     error, not a runtime one.
//   - Prefix derivation over a root unit.

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
)

// root is the unit prefixes are applied to.
type root struct {
	unit Unit
	conv Conversion
}

// Of is a unit of quantities with dimension D and kind K.
// Values are small, comparable and safe to copy.
type Of[D dimension.Marker, K kind.Marker] struct {
	Unit
	conv Conversion
	root root
}

type defineOptions struct {
	offset  float64
	root    Unit
	factor  float64
	hasRoot bool
}

// Option configures Define.
type Option func(*defineOptions)

// WithOffset sets the affine offset; base = (x + offset) * factor.
func WithOffset(offset float64) Option {
	return func(o *defineOptions) { o.offset = offset }
}

// WithPrefixRoot makes prefixes apply to u (with the given factor to base)
// instead of the unit being defined. Kilogram uses Gram as its prefix root.
func WithPrefixRoot(u Unit, factor float64) Option {
	return func(o *defineOptions) {
		o.root = u
		o.factor = factor
		o.hasRoot = true
	}
}

// Base returns the base unit of (D, K): factor 1, offset 0.
func Base[D dimension.Marker, K kind.Marker](u Unit, opts ...Option) Of[D, K] {
	return Define[D, K](u, 1, opts...)
}

// Define binds u to (D, K) with the given factor to the base unit.
// Invalid names, factors or offsets panic (programmer error); use
// Conversion.Validate when the values come from input.
func Define[D dimension.Marker, K kind.Marker](u Unit, factor float64, opts ...Option) Of[D, K] {
	o := defineOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	conv := Conversion{Factor: factor, Offset: o.offset}
	if err := u.Validate(); err != nil {
		panic(err)
	}
	if err := conv.Validate(); err != nil {
		panic(fmt.Sprintf("unit: Define(%s): %v", u.long, err))
	}

	r := root{unit: u, conv: conv}
	if o.hasRoot {
		r = root{unit: o.root, conv: Conversion{Factor: o.factor, Offset: o.offset}}
		if err := r.conv.Validate(); err != nil {
			panic(fmt.Sprintf("unit: Define(%s): prefix root: %v", u.long, err))
		}
	}

	return Of[D, K]{Unit: u, conv: conv, root: r}
}

// Descriptor returns the unbound descriptor.
func (u Of[D, K]) Descriptor() Unit { return u.Unit }

// Conversion returns the affine map to the base unit.
func (u Of[D, K]) Conversion() Conversion { return u.conv }

// Dimension returns the dimension u is bound to.
func (u Of[D, K]) Dimension() dimension.Vector {
	var d D
	return d.Dimension()
}

// Kind returns the kind u is bound to.
func (u Of[D, K]) Kind() kind.ID {
	var k K
	return k.Kind()
}

// PrefixRoot returns the descriptor prefixes are applied to.
func (u Of[D, K]) PrefixRoot() Unit { return u.root.unit }

// Prefixed derives the prefixed unit from u's prefix root. The factor is the
// root factor scaled by the prefix, the offset is the root offset, and names
// are concatenated. NoPrefix yields the root itself.
func (u Of[D, K]) Prefixed(p Prefix) Of[D, K] {
	r := u.root
	if p.IsNone() {
		return Of[D, K]{Unit: r.unit, conv: r.conv, root: r}
	}

	pu, pc := p.Apply(r.unit, r.conv)

	return Of[D, K]{Unit: pu, conv: pc, root: r}
}

// Family returns every prefixed member of u's family in ascending prefix
// order. The NoPrefix member is the prefix root.
func (u Of[D, K]) Family() []Of[D, K] {
	out := make([]Of[D, K], 0, len(all))
	for _, p := range all {
		out = append(out, u.Prefixed(p))
	}

	return out
}
