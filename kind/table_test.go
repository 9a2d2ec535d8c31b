package kind_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	thermo kind.ID = "Thermo"
	torque kind.ID = "Torque"
)

func resolve(t *testing.T, tb *kind.Table, op kind.Op, l, r kind.ID) kind.ID {
	t.Helper()
	res, err := tb.Resolve(op, l, r)
	require.NoError(t, err)
	return res
}

// TestBuiltins covers the rules every table carries.
func TestBuiltins(t *testing.T) {
	tb := kind.NewTable()

	assert.Equal(t, torque, resolve(t, tb, kind.OpMul, torque, kind.Unit))
	assert.Equal(t, torque, resolve(t, tb, kind.OpMul, kind.Unit, torque))
	assert.Equal(t, torque, resolve(t, tb, kind.OpDiv, torque, kind.Unit))
	assert.Equal(t, kind.Unit, resolve(t, tb, kind.OpDiv, torque, torque))
	for _, op := range []kind.Op{kind.OpAdd, kind.OpSub, kind.OpMul, kind.OpDiv} {
		assert.Equal(t, kind.Unit, resolve(t, tb, op, kind.Unit, kind.Unit), op.String())
	}

	assert.Equal(t, kind.Angle, resolve(t, tb, kind.OpAdd, kind.Angle, kind.Angle))
	assert.Equal(t, kind.Unit, resolve(t, tb, kind.OpSub, kind.Angle, kind.Angle))
	assert.Equal(t, kind.Angle, resolve(t, tb, kind.OpDiv, kind.Unit, kind.Angle))
	assert.Equal(t, kind.Unit, resolve(t, tb, kind.OpDiv, kind.Angle, kind.Angle))
}

// TestNoRule rejects undeclared combinations.
func TestNoRule(t *testing.T) {
	tb := kind.NewTable()

	cases := []struct {
		op   kind.Op
		l, r kind.ID
	}{
		{kind.OpAdd, torque, torque},
		{kind.OpAdd, torque, kind.Unit},
		{kind.OpSub, kind.Unit, torque},
		{kind.OpMul, torque, torque},
		{kind.OpDiv, torque, kind.Angle},
		{kind.OpDiv, kind.Unit, torque},
		{kind.OpMul, kind.Angle, kind.Angle},
		{kind.OpAdd, kind.Angle, kind.Unit},
	}
	for _, c := range cases {
		_, err := tb.Resolve(c.op, c.l, c.r)
		assert.ErrorIs(t, err, kind.ErrNoRule, "%s %s %s", c.l, c.op, c.r)
		assert.False(t, tb.Allows(c.op, c.l, c.r))
	}
}

// TestDeclare registers temperature-style rules and checks directionality.
func TestDeclare(t *testing.T) {
	tb := kind.NewTable()
	require.NoError(t, tb.Declare(
		kind.Add(thermo, kind.Unit, thermo),
		kind.SelfSub(thermo, kind.Unit),
		kind.Sub(thermo, kind.Unit, thermo),
	))

	assert.Equal(t, thermo, resolve(t, tb, kind.OpAdd, thermo, kind.Unit))
	assert.Equal(t, thermo, resolve(t, tb, kind.OpAdd, kind.Unit, thermo))
	assert.Equal(t, kind.Unit, resolve(t, tb, kind.OpSub, thermo, thermo))
	assert.Equal(t, thermo, resolve(t, tb, kind.OpSub, thermo, kind.Unit))

	_, err := tb.Resolve(kind.OpAdd, thermo, thermo)
	assert.ErrorIs(t, err, kind.ErrNoRule)
	_, err = tb.Resolve(kind.OpSub, kind.Unit, thermo)
	assert.ErrorIs(t, err, kind.ErrNoRule)

	// Redeclaring identical rules is accepted.
	require.NoError(t, tb.Declare(kind.SelfSub(thermo, kind.Unit)))
	assert.Len(t, tb.Rules(), 4)
}

// TestDeclareConflicts covers every rejection path and atomicity.
func TestDeclareConflicts(t *testing.T) {
	tb := kind.NewTable()
	require.NoError(t, tb.Declare(kind.SelfAdd(torque, torque)))

	err := tb.Declare(kind.SelfAdd(torque, kind.Unit))
	assert.ErrorIs(t, err, kind.ErrConflictingRule)

	err = tb.Declare(kind.Mul(torque, kind.Unit, kind.Angle))
	assert.ErrorIs(t, err, kind.ErrConflictingRule)
	assert.Contains(t, errors.FlattenHints(err), "cannot be overridden")

	err = tb.Declare(kind.SelfSub(torque, torque), kind.SelfSub(torque, kind.Unit))
	assert.ErrorIs(t, err, kind.ErrConflictingRule)

	// A failing batch leaves nothing behind.
	err = tb.Declare(kind.SelfMul(torque, torque), kind.SelfAdd(torque, kind.Angle))
	assert.ErrorIs(t, err, kind.ErrConflictingRule)
	assert.False(t, tb.Allows(kind.OpMul, torque, torque))

	assert.ErrorIs(t, tb.Declare(kind.SelfAdd("", torque)), kind.ErrEmptyKind)
	assert.ErrorIs(t, tb.Declare(kind.Rule{Op: kind.Op(9), Left: torque, Right: torque, Result: torque}), kind.ErrUnknownOp)

	// Declaring a rule identical to a built-in is a no-op.
	require.NoError(t, tb.Declare(kind.Div(torque, torque, kind.Unit)))
	assert.Len(t, tb.Rules(), 1)

	assert.Panics(t, func() { tb.MustDeclare(kind.SelfAdd(torque, kind.Angle)) })
}

// TestRulesSorted checks the listing order and that mirrors are expanded.
func TestRulesSorted(t *testing.T) {
	tb := kind.NewTable()
	tb.MustDeclare(kind.Mul(torque, thermo, torque), kind.Div(thermo, torque, thermo))

	want := []kind.Rule{
		{Op: kind.OpMul, Left: thermo, Right: torque, Result: torque},
		{Op: kind.OpDiv, Left: thermo, Right: torque, Result: thermo},
		{Op: kind.OpMul, Left: torque, Right: thermo, Result: torque},
	}
	assert.Equal(t, want, tb.Rules())
}

// TestWithLogger observes debug output for new rules only.
func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tb := kind.NewTable(kind.WithLogger(zap.New(core)))

	tb.MustDeclare(kind.Add(thermo, kind.Unit, thermo))
	tb.MustDeclare(kind.Add(thermo, kind.Unit, thermo))
	assert.Equal(t, 2, logs.FilterMessage("kind rule declared").Len())

	assert.Panics(t, func() { kind.WithLogger(nil) })
}

// TestMarkersAndOps covers the small helpers.
func TestMarkersAndOps(t *testing.T) {
	assert.Equal(t, kind.Unit, kind.Of[kind.UnitKind]())
	assert.Equal(t, kind.Angle, kind.Of[kind.AngleKind]())

	for _, s := range []string{"add", "+", "sub", "-", "mul", "*", "div", "/"} {
		op, err := kind.ParseOp(s)
		require.NoError(t, err)
		assert.Contains(t, []string{"+", "-", "*", "/"}, op.String())
	}
	_, err := kind.ParseOp("pow")
	assert.ErrorIs(t, err, kind.ErrUnknownOp)
	assert.Equal(t, "op(7)", kind.Op(7).String())

	assert.Equal(t, "Thermo + Unit -> Thermo (mirrored)", kind.Add(thermo, kind.Unit, thermo).String())
	assert.Equal(t, "Thermo - Thermo -> Unit", kind.SelfSub(thermo, kind.Unit).String())
	assert.NotNil(t, kind.Default())
}
