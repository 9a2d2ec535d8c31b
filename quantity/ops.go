// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Operations whose result dimension or kind differs from the operands'.
//   - Each New* constructor validates once; Apply is total and allocation-free.
//
// Notes:
//   - The Of constraint is satisfied by every Quantity instantiation. Callers
//     name operand and result types (often si aliases); the scalar is inferred.

package quantity

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/value"
)

// Of is satisfied by Quantity[T, D, K] for any D and K.
type Of[T value.Scalar] interface {
	~struct{ v T }
	Dimension() dimension.Vector
	Kind() kind.ID
}

func base[Q Of[T], T value.Scalar](q Q) T { return struct{ v T }(q).v }

func wrap[Q Of[T], T value.Scalar](x T) Q { return Q(struct{ v T }{v: x}) }

func dimOf[Q Of[T], T value.Scalar]() dimension.Vector {
	var q Q
	return q.Dimension()
}

func kindOf[Q Of[T], T value.Scalar]() kind.ID {
	var q Q
	return q.Kind()
}

type options struct {
	table *kind.Table
}

// Option configures operation constructors.
type Option func(*options)

// WithKindTable resolves kinds against t instead of kind.Default().
func WithKindTable(t *kind.Table) Option {
	if t == nil {
		panic("quantity: WithKindTable: nil table")
	}
	return func(o *options) { o.table = t }
}

func gatherOptions(opts []Option) options {
	o := options{table: kind.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// checkDim verifies the declared result dimension.
func checkDim(name string, got, want dimension.Vector) error {
	if err := want.Validate(); err != nil {
		return errors.Wrapf(err, "%s: result %s", name, want)
	}
	if got != want {
		return errors.WithHint(
			errors.Wrapf(ErrDimensionMismatch, "%s: result type has %s, operands give %s", name, got, want),
			"declare the result as a quantity of dimension "+want.String(),
		)
	}

	return nil
}

// checkKind resolves l op r in the table and compares with the declared kind.
func checkKind(name string, t *kind.Table, op kind.Op, l, r, got kind.ID) error {
	want, err := t.Resolve(op, l, r)
	if err != nil {
		return errors.Wrap(err, name)
	}
	if got != want {
		return errors.WithHint(
			errors.Wrapf(ErrKindMismatch, "%s: result type has kind %s, %s %s %s gives %s", name, got, l, op, r, want),
			"declare the result with kind "+string(want)+", or DropKind first",
		)
	}

	return nil
}

// checkUnitKind is used by operations whose result kind is always neutral.
func checkUnitKind(name string, got kind.ID) error {
	if got != kind.Unit {
		return errors.WithHint(
			errors.Wrapf(ErrKindMismatch, "%s: result type has kind %s, want %s", name, got, kind.Unit),
			"powers and roots always produce the neutral kind",
		)
	}

	return nil
}

// checkSame verifies equal operand dimensions for sums and differences.
func checkSame(name string, a, b dimension.Vector) error {
	if a != b {
		return errors.Wrapf(ErrDimensionMismatch, "%s: operands have %s and %s", name, a, b)
	}

	return nil
}

// must panics on construction errors.
func must[O any](op O, err error) O {
	if err != nil {
		panic(err)
	}

	return op
}

// ---------- Add / Sub ----------

// AddOp adds quantities whose kinds combine under a rule.
type AddOp[A, B, R Of[T], T value.Scalar] struct{}

// NewAdd checks that A, B and R share a dimension and that the kind table
// maps kind(A) + kind(B) to kind(R).
func NewAdd[A, B, R Of[T], T value.Scalar](opts ...Option) (AddOp[A, B, R, T], error) {
	o := gatherOptions(opts)
	da, db, dr := dimOf[A, T](), dimOf[B, T](), dimOf[R, T]()
	if err := checkSame("add", da, db); err != nil {
		return AddOp[A, B, R, T]{}, err
	}
	if err := checkDim("add", dr, da); err != nil {
		return AddOp[A, B, R, T]{}, err
	}
	if err := checkKind("add", o.table, kind.OpAdd, kindOf[A, T](), kindOf[B, T](), kindOf[R, T]()); err != nil {
		return AddOp[A, B, R, T]{}, err
	}

	return AddOp[A, B, R, T]{}, nil
}

// MustAdd is NewAdd that panics on error.
func MustAdd[A, B, R Of[T], T value.Scalar](opts ...Option) AddOp[A, B, R, T] {
	return must(NewAdd[A, B, R, T](opts...))
}

// Apply returns a + b.
func (AddOp[A, B, R, T]) Apply(a A, b B) R { return wrap[R, T](base[A, T](a) + base[B, T](b)) }

// SubOp subtracts quantities whose kinds combine under a rule.
type SubOp[A, B, R Of[T], T value.Scalar] struct{}

// NewSub checks that A, B and R share a dimension and that the kind table
// maps kind(A) - kind(B) to kind(R).
func NewSub[A, B, R Of[T], T value.Scalar](opts ...Option) (SubOp[A, B, R, T], error) {
	o := gatherOptions(opts)
	da, db, dr := dimOf[A, T](), dimOf[B, T](), dimOf[R, T]()
	if err := checkSame("sub", da, db); err != nil {
		return SubOp[A, B, R, T]{}, err
	}
	if err := checkDim("sub", dr, da); err != nil {
		return SubOp[A, B, R, T]{}, err
	}
	if err := checkKind("sub", o.table, kind.OpSub, kindOf[A, T](), kindOf[B, T](), kindOf[R, T]()); err != nil {
		return SubOp[A, B, R, T]{}, err
	}

	return SubOp[A, B, R, T]{}, nil
}

// MustSub is NewSub that panics on error.
func MustSub[A, B, R Of[T], T value.Scalar](opts ...Option) SubOp[A, B, R, T] {
	return must(NewSub[A, B, R, T](opts...))
}

// Apply returns a - b.
func (SubOp[A, B, R, T]) Apply(a A, b B) R { return wrap[R, T](base[A, T](a) - base[B, T](b)) }

// ---------- Mul / Div / Recip ----------

// MulOp multiplies two quantities.
type MulOp[A, B, R Of[T], T value.Scalar] struct{}

// NewMul checks dim(R) = dim(A)·dim(B) and kind(A) * kind(B) = kind(R).
func NewMul[A, B, R Of[T], T value.Scalar](opts ...Option) (MulOp[A, B, R, T], error) {
	o := gatherOptions(opts)
	if err := checkDim("mul", dimOf[R, T](), dimOf[A, T]().Mul(dimOf[B, T]())); err != nil {
		return MulOp[A, B, R, T]{}, err
	}
	if err := checkKind("mul", o.table, kind.OpMul, kindOf[A, T](), kindOf[B, T](), kindOf[R, T]()); err != nil {
		return MulOp[A, B, R, T]{}, err
	}

	return MulOp[A, B, R, T]{}, nil
}

// MustMul is NewMul that panics on error.
func MustMul[A, B, R Of[T], T value.Scalar](opts ...Option) MulOp[A, B, R, T] {
	return must(NewMul[A, B, R, T](opts...))
}

// Apply returns a * b.
func (MulOp[A, B, R, T]) Apply(a A, b B) R { return wrap[R, T](base[A, T](a) * base[B, T](b)) }

// DivOp divides two quantities.
type DivOp[A, B, R Of[T], T value.Scalar] struct{}

// NewDiv checks dim(R) = dim(A)/dim(B) and kind(A) / kind(B) = kind(R).
func NewDiv[A, B, R Of[T], T value.Scalar](opts ...Option) (DivOp[A, B, R, T], error) {
	o := gatherOptions(opts)
	if err := checkDim("div", dimOf[R, T](), dimOf[A, T]().Div(dimOf[B, T]())); err != nil {
		return DivOp[A, B, R, T]{}, err
	}
	if err := checkKind("div", o.table, kind.OpDiv, kindOf[A, T](), kindOf[B, T](), kindOf[R, T]()); err != nil {
		return DivOp[A, B, R, T]{}, err
	}

	return DivOp[A, B, R, T]{}, nil
}

// MustDiv is NewDiv that panics on error.
func MustDiv[A, B, R Of[T], T value.Scalar](opts ...Option) DivOp[A, B, R, T] {
	return must(NewDiv[A, B, R, T](opts...))
}

// Apply returns a / b.
func (DivOp[A, B, R, T]) Apply(a A, b B) R { return wrap[R, T](base[A, T](a) / base[B, T](b)) }

// RecipOp computes 1/a.
type RecipOp[A, R Of[T], T value.Scalar] struct{}

// NewRecip checks dim(R) = dim(A)⁻¹ and Unit / kind(A) = kind(R).
func NewRecip[A, R Of[T], T value.Scalar](opts ...Option) (RecipOp[A, R, T], error) {
	o := gatherOptions(opts)
	if err := checkDim("recip", dimOf[R, T](), dimOf[A, T]().Inv()); err != nil {
		return RecipOp[A, R, T]{}, err
	}
	if err := checkKind("recip", o.table, kind.OpDiv, kind.Unit, kindOf[A, T](), kindOf[R, T]()); err != nil {
		return RecipOp[A, R, T]{}, err
	}

	return RecipOp[A, R, T]{}, nil
}

// MustRecip is NewRecip that panics on error.
func MustRecip[A, R Of[T], T value.Scalar](opts ...Option) RecipOp[A, R, T] {
	return must(NewRecip[A, R, T](opts...))
}

// Apply returns 1/a.
func (RecipOp[A, R, T]) Apply(a A) R { return wrap[R, T](value.Recip(base[A, T](a))) }

// ---------- Pow / Root ----------

// PowOp raises a quantity to an integer power.
type PowOp[A, R Of[T], T value.Scalar] struct{ p int }

// NewPow checks dim(R) = dim(A)·p and that R has the neutral kind.
func NewPow[A, R Of[T], T value.Scalar](p int, _ ...Option) (PowOp[A, R, T], error) {
	if err := checkExponent("pow", p); err != nil {
		return PowOp[A, R, T]{}, err
	}
	if err := checkDim("pow", dimOf[R, T](), dimOf[A, T]().Pow(p)); err != nil {
		return PowOp[A, R, T]{}, err
	}
	if err := checkUnitKind("pow", kindOf[R, T]()); err != nil {
		return PowOp[A, R, T]{}, err
	}

	return PowOp[A, R, T]{p: p}, nil
}

// MustPow is NewPow that panics on error.
func MustPow[A, R Of[T], T value.Scalar](p int, opts ...Option) PowOp[A, R, T] {
	return must(NewPow[A, R, T](p, opts...))
}

// Power returns the exponent.
func (op PowOp[A, R, T]) Power() int { return op.p }

// Apply returns a^p.
func (op PowOp[A, R, T]) Apply(a A) R { return wrap[R, T](value.Pow(base[A, T](a), op.p)) }

// checkExponent bounds p before it multiplies or divides a dimension
// vector, so the product cannot wrap around int.
func checkExponent(op string, p int) error {
	if p < -dimension.MaxExponent || p > dimension.MaxExponent {
		return errors.Wrapf(dimension.ErrExponentRange, "%s: exponent %d outside [-%d, %d]",
			op, p, dimension.MaxExponent, dimension.MaxExponent)
	}
	return nil
}

// RootOp takes an integer root of a quantity.
type RootOp[A, R Of[T], T value.Scalar] struct{ p int }

// NewRoot checks that every exponent of dim(A) divides by p, that
// dim(R) = dim(A)/p, and that R has the neutral kind.
func NewRoot[A, R Of[T], T value.Scalar](p int, _ ...Option) (RootOp[A, R, T], error) {
	if err := checkExponent("root", p); err != nil {
		return RootOp[A, R, T]{}, err
	}
	d, err := dimOf[A, T]().Root(p)
	if err != nil {
		return RootOp[A, R, T]{}, errors.WithHint(
			errors.Wrapf(err, "root %d of %s", p, dimOf[A, T]()),
			"only dimensions whose exponents are multiples of the root have a root",
		)
	}
	if err := checkDim("root", dimOf[R, T](), d); err != nil {
		return RootOp[A, R, T]{}, err
	}
	if err := checkUnitKind("root", kindOf[R, T]()); err != nil {
		return RootOp[A, R, T]{}, err
	}

	return RootOp[A, R, T]{p: p}, nil
}

// MustRoot is NewRoot that panics on error.
func MustRoot[A, R Of[T], T value.Scalar](p int, opts ...Option) RootOp[A, R, T] {
	return must(NewRoot[A, R, T](p, opts...))
}

// NewSqrt is NewRoot(2).
func NewSqrt[A, R Of[T], T value.Scalar](opts ...Option) (RootOp[A, R, T], error) {
	return NewRoot[A, R, T](2, opts...)
}

// MustSqrt is NewSqrt that panics on error.
func MustSqrt[A, R Of[T], T value.Scalar](opts ...Option) RootOp[A, R, T] {
	return must(NewSqrt[A, R, T](opts...))
}

// NewCbrt is NewRoot(3).
func NewCbrt[A, R Of[T], T value.Scalar](opts ...Option) (RootOp[A, R, T], error) {
	return NewRoot[A, R, T](3, opts...)
}

// MustCbrt is NewCbrt that panics on error.
func MustCbrt[A, R Of[T], T value.Scalar](opts ...Option) RootOp[A, R, T] {
	return must(NewCbrt[A, R, T](opts...))
}

// Order returns the root order.
func (op RootOp[A, R, T]) Order() int { return op.p }

// Apply returns the p-th root of a.
func (op RootOp[A, R, T]) Apply(a A) R { return wrap[R, T](value.Root(base[A, T](a), op.p)) }
