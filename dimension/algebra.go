// SPDX-License-Identifier: MIT
// Package: dimension
//
// Purpose:
//   - The five closed operations over Vector (compose, decompose, invert,
//     scale, exact divide) plus the identity.
//   - Range validation used by callers that construct quantity operations.
//
// Determinism & Performance:
//   - All operations are pure, allocate nothing and run in O(NumBases).

package dimension

import "github.com/cockroachdb/errors"

// New builds a Vector from explicit exponents in canonical order.
func New(length, mass, time, current, temperature, amount, intensity int) Vector {
	return Vector{length, mass, time, current, temperature, amount, intensity}
}

// Of returns the unit vector of a single base dimension.
func Of(b Base) Vector {
	var v Vector
	v[b] = 1

	return v
}

// Get returns the exponent of base b.
func (v Vector) Get(b Base) int {
	return v[b]
}

// IsDimensionless reports whether v is the identity (all exponents zero).
func (v Vector) IsDimensionless() bool {
	return v == Vector{}
}

// Mul composes two dimensions (element-wise sum).
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out
}

// Div decomposes v by o (element-wise difference).
func (v Vector) Div(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] - o[i]
	}

	return out
}

// Inv negates every exponent.
func (v Vector) Inv() Vector {
	var out Vector
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// Pow scales every exponent by p.
func (v Vector) Pow(p int) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * p
	}

	return out
}

// Root divides every exponent by p.
//
// The division must be exact: Root fails with ErrNotDivisible when any
// exponent is not a multiple of p, and with ErrZeroRoot when p == 0.
// Negative roots are allowed and invert the result.
func (v Vector) Root(p int) (Vector, error) {
	if p == 0 {
		return Vector{}, errors.WithStack(ErrZeroRoot)
	}

	var out Vector
	for i := range v {
		if v[i]%p != 0 {
			return Vector{}, errors.Wrapf(ErrNotDivisible, "root %d of %s: %s exponent %d",
				p, v, Base(i), v[i])
		}
		out[i] = v[i] / p
	}

	return out, nil
}

// Validate checks that every exponent lies in [-MaxExponent, MaxExponent].
func (v Vector) Validate() error {
	for i, e := range v {
		if e < -MaxExponent || e > MaxExponent {
			return errors.Wrapf(ErrExponentRange, "%s exponent %d", Base(i), e)
		}
	}

	return nil
}

// ParseBase maps a base name ("length", "mass", ...) or its dimension symbol
// ("L", "M", ...) to a Base.
func ParseBase(name string) (Base, error) {
	for _, b := range Bases() {
		if name == b.String() || name == b.Symbol() {
			return b, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownBase, "%q", name)
}
