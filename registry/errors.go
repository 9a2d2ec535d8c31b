// SPDX-License-Identifier: MIT

package registry

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownQuantity is returned for quantity names not in the registry.
	ErrUnknownQuantity = errors.New("registry: unknown quantity")

	// ErrUnknownUnit is returned for unit identifiers not in the registry.
	ErrUnknownUnit = errors.New("registry: unknown unit")

	// ErrDuplicateQuantity is returned when a quantity name is redefined differently.
	ErrDuplicateQuantity = errors.New("registry: duplicate quantity")

	// ErrDuplicateUnit is returned when a quantity already has a different unit
	// with the same long or print name.
	ErrDuplicateUnit = errors.New("registry: duplicate unit")

	// ErrQuantityMismatch is returned when a unit is registered against, or
	// looked up in, a quantity with a different dimension or kind.
	ErrQuantityMismatch = errors.New("registry: quantity mismatch")

	// ErrIncompatibleUnits is returned when two units share no dimension and kind.
	ErrIncompatibleUnits = errors.New("registry: incompatible units")

	// ErrAmbiguousUnit is returned when a conversion has several readings with
	// different results.
	ErrAmbiguousUnit = errors.New("registry: ambiguous unit")
)
