// SPDX-License-Identifier: MIT

package dimension

import "github.com/cockroachdb/errors"

// Sentinel errors. Every message is prefixed with "dimension:"; callers match
// them with errors.Is.
var (
	// ErrNotDivisible is returned by Root when at least one exponent is not an
	// exact multiple of the requested root.
	ErrNotDivisible = errors.New("dimension: exponents not divisible by root")

	// ErrZeroRoot is returned by Root for a zero root.
	ErrZeroRoot = errors.New("dimension: root of order zero")

	// ErrExponentRange indicates an exponent outside [-MaxExponent, MaxExponent].
	ErrExponentRange = errors.New("dimension: exponent out of range")

	// ErrUnknownBase is returned by ParseBase for an unrecognised base name.
	ErrUnknownBase = errors.New("dimension: unknown base dimension")
)
