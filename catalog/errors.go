// SPDX-License-Identifier: MIT

package catalog

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidCatalog is returned for catalogues that fail to decode or validate.
	ErrInvalidCatalog = errors.New("catalog: invalid catalogue")

	// ErrUnsupportedFormat is returned for unknown formats and file extensions.
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
)
