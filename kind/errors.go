// SPDX-License-Identifier: MIT

package kind

import "github.com/cockroachdb/errors"

var (
	// ErrNoRule is returned when no built-in or declared rule covers a combination.
	ErrNoRule = errors.New("kind: no compatibility rule")

	// ErrConflictingRule is returned when a declaration disagrees with an existing rule.
	ErrConflictingRule = errors.New("kind: conflicting rule")

	// ErrEmptyKind is returned for rules naming an empty kind ID.
	ErrEmptyKind = errors.New("kind: empty kind id")

	// ErrUnknownOp is returned by ParseOp.
	ErrUnknownOp = errors.New("kind: unknown operator")
)
