// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and indexers return these sentinels (possibly wrapped with
// method context via %w); callers and tests match them with errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (symmetric builders reject them at ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilFunc indicates that a nil fill function was passed to a builder.
	ErrNilFunc = errors.New("matrix: nil fill function")
)
