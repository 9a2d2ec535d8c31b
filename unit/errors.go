// SPDX-License-Identifier: MIT

package unit

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidFactor is reported for zero, NaN or infinite conversion factors.
	ErrInvalidFactor = errors.New("unit: invalid conversion factor")

	// ErrInvalidOffset is reported for NaN or infinite offsets.
	ErrInvalidOffset = errors.New("unit: invalid conversion offset")

	// ErrEmptyName is reported for descriptors without a long or print name.
	ErrEmptyName = errors.New("unit: empty name")

	// ErrUnknownPrefix is returned by ParsePrefix.
	ErrUnknownPrefix = errors.New("unit: unknown prefix")
)
