// SPDX-License-Identifier: MIT

package kind

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ID names a kind. IDs are compared by value; two markers returning the same
// ID are the same kind.
type ID string

// Built-in kinds.
const (
	// Unit is the neutral kind; it composes as identity under every operator.
	Unit ID = "Unit"

	// Angle is produced by inverse trigonometric functions and phase extraction.
	Angle ID = "Angle"
)

// Marker is implemented by the zero-size types used as the kind type parameter
// of a quantity.
type Marker interface {
	Kind() ID
}

// UnitKind marks quantities without a special kind.
type UnitKind struct{}

// Kind implements Marker.
func (UnitKind) Kind() ID { return Unit }

// AngleKind marks angle-flavoured quantities.
type AngleKind struct{}

// Kind implements Marker.
func (AngleKind) Kind() ID { return Angle }

// Of returns the ID carried by marker type K.
func Of[K Marker]() ID {
	var k K
	return k.Kind()
}

// Op is one of the four kind relations.
type Op int

// The four relations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}

	return fmt.Sprintf("op(%d)", int(op))
}

// ParseOp maps "add", "sub", "mul", "div" or the operator symbol to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "sub", "-":
		return OpSub, nil
	case "mul", "*":
		return OpMul, nil
	case "div", "/":
		return OpDiv, nil
	}

	return 0, errors.Wrapf(ErrUnknownOp, "%q", s)
}

// Rule states that Left Op Right yields Result. Mirrored rules also register
// Right Op Left.
type Rule struct {
	Op     Op
	Left   ID
	Right  ID
	Result ID
	Mirror bool
}

// String renders the rule, e.g. "Thermo + Unit -> Thermo (mirrored)".
func (r Rule) String() string {
	s := fmt.Sprintf("%s %s %s -> %s", r.Left, r.Op, r.Right, r.Result)
	if r.Mirror && r.Left != r.Right {
		s += " (mirrored)"
	}

	return s
}

// SelfAdd declares K + K = result.
func SelfAdd(k, result ID) Rule { return Rule{Op: OpAdd, Left: k, Right: k, Result: result} }

// Add declares a + b = result and b + a = result.
func Add(a, b, result ID) Rule { return Rule{Op: OpAdd, Left: a, Right: b, Result: result, Mirror: true} }

// SelfSub declares K - K = result.
func SelfSub(k, result ID) Rule { return Rule{Op: OpSub, Left: k, Right: k, Result: result} }

// Sub declares a - b = result. Subtraction is directional.
func Sub(a, b, result ID) Rule { return Rule{Op: OpSub, Left: a, Right: b, Result: result} }

// SelfMul declares K * K = result.
func SelfMul(k, result ID) Rule { return Rule{Op: OpMul, Left: k, Right: k, Result: result} }

// Mul declares a * b = result and b * a = result.
func Mul(a, b, result ID) Rule { return Rule{Op: OpMul, Left: a, Right: b, Result: result, Mirror: true} }

// Div declares a / b = result. Division is directional.
func Div(a, b, result ID) Rule { return Rule{Op: OpDiv, Left: a, Right: b, Result: result} }
