// SPDX-License-Identifier: MIT

package histogram

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndhist/ndindex"
)

var (
	// ErrDimensionMismatch is returned when len(nBins) != len(limits), when a
	// point's dimensionality differs from the grid's, or when a weight vector's
	// length differs from nDimsData. It is the same value as
	// ndindex.ErrDimensionMismatch so either can be matched with errors.Is.
	ErrDimensionMismatch = ndindex.ErrDimensionMismatch

	// ErrInvalidBinCount is returned when any bin count is <= 0.
	ErrInvalidBinCount = ndindex.ErrInvalidBinCount

	// ErrInvalidLimits is returned when a dimension's limits are not finite or Min >= Max.
	ErrInvalidLimits = ndindex.ErrInvalidLimits

	// ErrIndexOutOfRange is returned by At for coordinates outside the grid.
	ErrIndexOutOfRange = ndindex.ErrIndexOutOfRange

	// ErrEmptyGrid is returned when a histogram is requested with zero dimensions.
	ErrEmptyGrid = errors.New("histogram: grid must have at least one dimension")

	// ErrInvalidDataDims is returned when nDimsData <= 0.
	ErrInvalidDataDims = errors.New("histogram: data dimensionality must be > 0")

	// ErrInvalidVolume is returned by Normalize when the volume strategy yields
	// a bin volume that is zero, negative, NaN or infinite.
	ErrInvalidVolume = errors.New("histogram: bin volume must be finite and > 0")
)

const panicNilVolume = "histogram: WithVolume: volume strategy must not be nil"

// histErrorf wraps err with the name of the failing Histogram operation.
func histErrorf(op string, err error) error {
	return fmt.Errorf("histogram.%s: %w", op, err)
}
