// SPDX-License-Identifier: MIT
// Package: kind
//
// Purpose:
//   - Table stores declared compatibility rules and resolves kind composition.
//
// Concurrency:
//   - Declare takes the write lock, Resolve and Rules the read lock. Tables are
//     normally populated during initialization and read thereafter.

package kind

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type key struct {
	op   Op
	l, r ID
}

// Table is a set of kind compatibility rules on top of the built-ins.
type Table struct {
	mu    sync.RWMutex
	rules map[key]ID
	log   *zap.Logger
}

// NewTable returns a table holding only the built-in rules.
func NewTable(opts ...Option) *Table {
	o := gatherOptions(opts)

	return &Table{
		rules: make(map[key]ID),
		log:   o.log,
	}
}

var defaultTable = NewTable()

// Default returns the process-wide table consulted by quantity operations
// unless another table is supplied.
func Default() *Table { return defaultTable }

// builtin reports the result of the rules that every table carries.
func builtin(op Op, l, r ID) (ID, bool) {
	switch op {
	case OpMul:
		if l == Unit {
			return r, true
		}
		if r == Unit {
			return l, true
		}
	case OpDiv:
		if r == Unit {
			return l, true
		}
		if l == r {
			return Unit, true
		}
		if l == Unit && r == Angle {
			return Angle, true
		}
	case OpAdd:
		if l == Unit && r == Unit {
			return Unit, true
		}
		if l == Angle && r == Angle {
			return Angle, true
		}
	case OpSub:
		if l == Unit && r == Unit {
			return Unit, true
		}
		if l == Angle && r == Angle {
			return Unit, true
		}
	}

	return "", false
}

// expand turns a rule into its (op, left, right) entries.
func expand(r Rule) []key {
	k := key{op: r.Op, l: r.Left, r: r.Right}
	if r.Mirror && r.Left != r.Right {
		return []key{k, {op: r.Op, l: r.Right, r: r.Left}}
	}

	return []key{k}
}

// Declare adds rules to the table. Redeclaring an identical rule is a no-op.
// A rule that contradicts a built-in, an existing declaration or another rule
// in the same call fails with ErrConflictingRule and nothing is added.
func (t *Table) Declare(rules ...Rule) error {
	pending := make(map[key]ID, len(rules))
	for _, r := range rules {
		if r.Left == "" || r.Right == "" || r.Result == "" {
			return errors.Wrapf(ErrEmptyKind, "rule %s", r)
		}
		if r.Op < OpAdd || r.Op > OpDiv {
			return errors.Wrapf(ErrUnknownOp, "rule %s", r)
		}
		for _, k := range expand(r) {
			if prev, ok := pending[k]; ok && prev != r.Result {
				return errors.Wrapf(ErrConflictingRule, "%s %s %s: %s vs %s", k.l, k.op, k.r, prev, r.Result)
			}
			pending[k] = r.Result
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for k, res := range pending {
		if prev, ok := builtin(k.op, k.l, k.r); ok && prev != res {
			return errors.WithHint(
				errors.Wrapf(ErrConflictingRule, "%s %s %s: built-in gives %s, declared %s", k.l, k.op, k.r, prev, res),
				"built-in kind rules cannot be overridden",
			)
		}
		if prev, ok := t.rules[k]; ok && prev != res {
			return errors.Wrapf(ErrConflictingRule, "%s %s %s: declared %s, now %s", k.l, k.op, k.r, prev, res)
		}
	}
	for k, res := range pending {
		if _, ok := builtin(k.op, k.l, k.r); ok {
			continue
		}
		if _, ok := t.rules[k]; !ok {
			t.log.Debug("kind rule declared",
				zap.String("left", string(k.l)),
				zap.Stringer("op", k.op),
				zap.String("right", string(k.r)),
				zap.String("result", string(res)),
			)
		}
		t.rules[k] = res
	}

	return nil
}

// MustDeclare is Declare that panics on error. Intended for init-time setup.
func (t *Table) MustDeclare(rules ...Rule) {
	if err := t.Declare(rules...); err != nil {
		panic(err)
	}
}

// Resolve returns the kind of l op r, or ErrNoRule.
func (t *Table) Resolve(op Op, l, r ID) (ID, error) {
	if res, ok := builtin(op, l, r); ok {
		return res, nil
	}

	t.mu.RLock()
	res, ok := t.rules[key{op: op, l: l, r: r}]
	t.mu.RUnlock()
	if ok {
		return res, nil
	}

	return "", errors.WithHint(
		errors.Wrapf(ErrNoRule, "%s %s %s", l, op, r),
		"declare a rule on the kind table, or drop the kind of one operand",
	)
}

// Allows reports whether l op r is defined.
func (t *Table) Allows(op Op, l, r ID) bool {
	_, err := t.Resolve(op, l, r)
	return err == nil
}

// Rules returns the declared (non built-in) rules as single-direction entries,
// sorted by left kind, operator and right kind.
func (t *Table) Rules() []Rule {
	t.mu.RLock()
	out := make([]Rule, 0, len(t.rules))
	for k, res := range t.rules {
		out = append(out, Rule{Op: k.op, Left: k.l, Right: k.r, Result: res})
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Left != b.Left {
			return a.Left < b.Left
		}
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		return a.Right < b.Right
	})

	return out
}
