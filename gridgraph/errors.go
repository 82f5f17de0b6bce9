// SPDX-License-Identifier: MIT
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a map character that is neither a corner nor a block.
	ErrBadCell = errors.New("gridgraph: unknown map character")
	// ErrBadBlockLength indicates a negative, NaN or infinite block length.
	ErrBadBlockLength = errors.New("gridgraph: block length must be finite and non-negative")
)
