// SPDX-License-Identifier: MIT

package ndindex

import (
	"math"
)

// BinIndex returns the zero-based bin coordinate of value along one dimension
// whose minimum is offset:
//
//	floor(value/binSize) - floor(offset/binSize)
//
// The caller guarantees binSize > 0. No clamping is performed: values outside
// the dimension yield negative or too-large coordinates, and the caller must
// bounds-check before using the result.
// Complexity: O(1).
func BinIndex[T Real](value, binSize, offset T) int {
	v := math.Floor(float64(value) / float64(binSize))
	o := math.Floor(float64(offset) / float64(binSize))

	return int(v) - int(o)
}

// Size returns the total number of bins Π nBins[d].
//
// Errors:
//   - ErrEmptyShape if nBins is empty.
//   - ErrInvalidBinCount if any count is <= 0.
//   - ErrShapeOverflow if the product does not fit in an int.
//
// Complexity: O(D).
func Size(nBins []int) (int, error) {
	if len(nBins) == 0 {
		return 0, validatorErrorf("Size", ErrEmptyShape)
	}
	size := 1
	for _, n := range nBins {
		if n <= 0 {
			return 0, validatorErrorf("Size", ErrInvalidBinCount)
		}
		if size > math.MaxInt/n {
			return 0, validatorErrorf("Size", ErrShapeOverflow)
		}
		size *= n
	}

	return size, nil
}

// Strides returns the row-major stride of every dimension: the last dimension
// has stride 1 and stride[j] = stride[j+1] * nBins[j+1].
// nBins is assumed valid (see Size).
func Strides(nBins []int) []int {
	strides := make([]int, len(nBins))
	if len(nBins) == 0 {
		return strides
	}
	strides[len(nBins)-1] = 1
	for j := len(nBins) - 2; j >= 0; j-- {
		strides[j] = strides[j+1] * nBins[j+1]
	}

	return strides
}

// Flatten returns the row-major flat offset of coords within a grid of shape nBins:
//
//	i_{D-1} + Σ_{j=0}^{D-2} i_j · Π_{k=j+1}^{D-1} nBins[k]
//
// Stage 1 (Validate): shape non-empty, len(coords) == len(nBins).
// Stage 2 (Execute): accumulate coords[j]*stride[j] from the last axis backwards.
//
// Coordinates are NOT range-checked; out-of-range coordinates give an offset
// that does not address the intended bin. Use ValidateCoords beforehand when needed.
// Complexity: O(D), no allocation.
func Flatten(coords, nBins []int) (int, error) {
	if len(nBins) == 0 {
		return 0, validatorErrorf("Flatten", ErrEmptyShape)
	}
	if len(coords) != len(nBins) {
		return 0, validatorErrorf("Flatten", ErrDimensionMismatch)
	}

	flat, stride := 0, 1
	for j := len(nBins) - 1; j >= 0; j-- {
		flat += coords[j] * stride
		stride *= nBins[j]
	}

	return flat, nil
}

// Unflatten is the inverse of Flatten: it returns the coordinates addressed by
// flat in a row-major grid of shape nBins, so that
// Flatten(Unflatten(nBins, f), nBins) == f for every f in [0, Size(nBins)).
//
// Errors:
//   - ErrEmptyShape / ErrInvalidBinCount / ErrShapeOverflow from Size.
//   - ErrIndexOutOfRange if flat is outside [0, Size(nBins)).
//
// Complexity: O(D); allocates the returned slice.
func Unflatten(nBins []int, flat int) ([]int, error) {
	size, err := Size(nBins)
	if err != nil {
		return nil, validatorErrorf("Unflatten", err)
	}
	if flat < 0 || flat >= size {
		return nil, validatorErrorf("Unflatten", ErrIndexOutOfRange)
	}

	coords := make([]int, len(nBins))
	for j := len(nBins) - 1; j >= 0; j-- {
		coords[j] = flat % nBins[j]
		flat /= nBins[j]
	}

	return coords, nil
}
