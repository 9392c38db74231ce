// SPDX-License-Identifier: MIT

package ndindex

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two sequences that must describe the same
	// number of dimensions have different lengths (point vs limits, coords vs nBins).
	ErrDimensionMismatch = errors.New("ndindex: dimension mismatch")

	// ErrEmptyShape indicates a shape with zero dimensions.
	ErrEmptyShape = errors.New("ndindex: shape must have at least one dimension")

	// ErrInvalidBinCount indicates a non-positive bin count in a shape.
	ErrInvalidBinCount = errors.New("ndindex: bin count must be > 0")

	// ErrIndexOutOfRange indicates a coordinate or flat offset outside the shape.
	ErrIndexOutOfRange = errors.New("ndindex: index out of range")

	// ErrShapeOverflow indicates the product of bin counts does not fit in an int.
	ErrShapeOverflow = errors.New("ndindex: shape size overflows int")

	// ErrInvalidLimits indicates a Range with non-finite bounds or Min >= Max.
	ErrInvalidLimits = errors.New("ndindex: limits must be finite with min < max")
)

// validatorErrorf tags a sentinel with the name of the failing check.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
