// SPDX-License-Identifier: MIT

package quantity

import "github.com/cockroachdb/errors"

var (
	// ErrDimensionMismatch indicates that the operand or result dimensions of
	// an operation do not line up.
	ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

	// ErrKindMismatch indicates that the declared result kind differs from the
	// kind the rule table produces, or that the operation requires a neutral kind.
	ErrKindMismatch = errors.New("quantity: kind mismatch")

	// ErrDecode is returned when a serialized quantity has the wrong shape.
	ErrDecode = errors.New("quantity: cannot decode")
)
