// SPDX-License-Identifier: MIT

package histogram

import (
	"github.com/katalvlaran/ndhist/matrix"
	"github.com/katalvlaran/ndhist/ndindex"
)

// Histogram is an N-dimensional regular-grid histogram with nDimsData channels
// per spatial bin. Storage is a Dense with one row per spatial bin and one
// column per channel, which is exactly the flat slot layout
// flatten(coords)*nDimsData + channel.
//
// A Histogram is not safe for concurrent use.
type Histogram[T ndindex.Real] struct {
	grid      Grid[T]
	nDimsData int
	bins      *matrix.Dense[T]
	volume    Volumer[T]

	entries int // accepted updates
	dropped int // out-of-range updates

	coords []int // scratch coordinates reused by locate
}

// New builds an empty histogram.
//
// Stage 1 (Validate), in this order:
//   - len(nBins) != len(limits)      → ErrDimensionMismatch
//   - len(nBins) == 0                → ErrEmptyGrid
//   - any nBins[d] <= 0              → ErrInvalidBinCount
//   - nDimsData <= 0                 → ErrInvalidDataDims
//   - non-finite limits or Min >= Max → ErrInvalidLimits
//   - volume strategy rejects grid   → the strategy's error
//
// Stage 2 (Prepare): derive bin sizes (Max-Min)/nBins[d].
// Stage 3 (Finalize): allocate nDimsData*Π nBins zeroed slots.
//
// Nothing is allocated for storage when validation fails.
// Complexity: O(D + nDimsData*Π nBins).
func New[T ndindex.Real](nBins []int, nDimsData int, limits []ndindex.Range[T], opts ...Option[T]) (*Histogram[T], error) {
	if len(nBins) != len(limits) {
		return nil, histErrorf("New", ErrDimensionMismatch)
	}
	if len(nBins) == 0 {
		return nil, histErrorf("New", ErrEmptyGrid)
	}
	for _, n := range nBins {
		if n <= 0 {
			return nil, histErrorf("New", ErrInvalidBinCount)
		}
	}
	if nDimsData <= 0 {
		return nil, histErrorf("New", ErrInvalidDataDims)
	}
	if err := ndindex.ValidateLimits(limits); err != nil {
		return nil, histErrorf("New", err)
	}
	size, err := ndindex.Size(nBins)
	if err != nil {
		return nil, histErrorf("New", err)
	}

	grid, err := newGrid(nBins, limits)
	if err != nil {
		return nil, histErrorf("New", err)
	}

	o := gatherOptions(opts...)
	if gv, ok := o.volume.(GridValidator[T]); ok {
		if err := gv.ValidateGrid(grid); err != nil {
			return nil, histErrorf("New", err)
		}
	}

	bins, err := matrix.NewDense[T](size, nDimsData)
	if err != nil {
		return nil, histErrorf("New", err)
	}

	return &Histogram[T]{
		grid:      grid,
		nDimsData: nDimsData,
		bins:      bins,
		volume:    o.volume,
		coords:    make([]int, len(nBins)),
	}, nil
}

// Update adds an unweighted data point: channel 0 of the point's spatial bin
// is incremented by 1. The other nDimsData-1 channels are left untouched.
//
// A point outside the limits is dropped silently (see Dropped).
// Errors: ErrDimensionMismatch if len(point) != Dims().
// Complexity: O(D).
func (h *Histogram[T]) Update(point []T) error {
	row, ok, err := h.locate(point)
	if err != nil {
		return histErrorf("Update", err)
	}
	if !ok {
		return nil
	}
	if err := h.bins.Add(row, 0, 1); err != nil {
		return histErrorf("Update", err)
	}
	h.entries++

	return nil
}

// UpdateWeighted adds weights[c] to channel c of the point's spatial bin for
// every c in [0, nDimsData).
//
// Stage 1 (Validate): len(weights) == nDimsData, then len(point) == Dims().
// Stage 2 (Execute): drop out-of-range points, otherwise accumulate.
//
// Errors: ErrDimensionMismatch; storage is untouched on error.
// Complexity: O(D + nDimsData).
func (h *Histogram[T]) UpdateWeighted(point, weights []T) error {
	if len(weights) != h.nDimsData {
		return histErrorf("UpdateWeighted", ErrDimensionMismatch)
	}
	row, ok, err := h.locate(point)
	if err != nil {
		return histErrorf("UpdateWeighted", err)
	}
	if !ok {
		return nil
	}
	for c, w := range weights {
		if err := h.bins.Add(row, c, w); err != nil {
			return histErrorf("UpdateWeighted", err)
		}
	}
	h.entries++

	return nil
}

// locate returns the storage row (flat spatial offset) of point.
// ok is false when the point lies outside the limits; the drop is counted.
//
// The per-dimension index uses ndindex.BinIndex relative to the dimension's
// minimum and is clamped to [0, nBins[d]-1]: a value on the upper edge Max, or
// one pushed past it by floating point rounding, lands in the last bin.
// Because BinIndex floors value and Min separately, bin edges sit on multiples
// of the bin size; when Min is not such a multiple a value can be placed one
// bin higher than (value-Min)/binSize would suggest.
func (h *Histogram[T]) locate(point []T) (row int, ok bool, err error) {
	in, err := ndindex.InBounds(point, h.grid.limits)
	if err != nil {
		return 0, false, err
	}
	if !in {
		h.dropped++
		return 0, false, nil
	}

	for d, v := range point {
		i := ndindex.BinIndex(v, h.grid.binSizes[d], h.grid.limits[d].Min)
		switch {
		case i < 0:
			i = 0
		case i >= h.grid.nBins[d]:
			i = h.grid.nBins[d] - 1
		}
		h.coords[d] = i
	}

	row, err = ndindex.Flatten(h.coords, h.grid.nBins)
	if err != nil {
		return 0, false, err
	}

	return row, true, nil
}
