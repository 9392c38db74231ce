// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public accessors return these sentinels wrapped with method context and
// never panic on user-supplied indices; match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or their product overflows int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
)
