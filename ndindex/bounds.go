// SPDX-License-Identifier: MIT

package ndindex

import "math"

// InBounds reports whether every coordinate of point lies inside the closed
// interval of its dimension. A NaN coordinate is out of bounds.
// Returns ErrDimensionMismatch when len(point) != len(limits).
// Complexity: O(D).
func InBounds[T Real](point []T, limits []Range[T]) (bool, error) {
	if len(point) != len(limits) {
		return false, validatorErrorf("InBounds", ErrDimensionMismatch)
	}
	for d, v := range point {
		if !limits[d].Contains(v) {
			return false, nil
		}
	}

	return true, nil
}

// ValidateCoords checks that coords addresses a bin of a grid shaped nBins.
//
// Errors: ErrDimensionMismatch, ErrIndexOutOfRange.
func ValidateCoords(coords, nBins []int) error {
	if len(coords) != len(nBins) {
		return validatorErrorf("ValidateCoords", ErrDimensionMismatch)
	}
	for d, c := range coords {
		if c < 0 || c >= nBins[d] {
			return validatorErrorf("ValidateCoords", ErrIndexOutOfRange)
		}
	}

	return nil
}

// ValidateLimits checks every Range has finite bounds and Min < Max.
func ValidateLimits[T Real](limits []Range[T]) error {
	for _, r := range limits {
		lo, hi := float64(r.Min), float64(r.Max)
		if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
			return validatorErrorf("ValidateLimits", ErrInvalidLimits)
		}
		if !(r.Min < r.Max) {
			return validatorErrorf("ValidateLimits", ErrInvalidLimits)
		}
	}

	return nil
}

// BinSizes returns (Max-Min)/nBins[d] for every dimension.
//
// Stage 1 (Validate): equal lengths, positive counts, valid limits.
// Stage 2 (Execute): divide each range width by its bin count.
func BinSizes[T Real](limits []Range[T], nBins []int) ([]T, error) {
	if len(limits) != len(nBins) {
		return nil, validatorErrorf("BinSizes", ErrDimensionMismatch)
	}
	if _, err := Size(nBins); err != nil {
		return nil, validatorErrorf("BinSizes", err)
	}
	if err := ValidateLimits(limits); err != nil {
		return nil, validatorErrorf("BinSizes", err)
	}

	sizes := make([]T, len(limits))
	for d, r := range limits {
		sizes[d] = r.Width() / T(nBins[d])
	}

	return sizes, nil
}
