package histogram

import (
	"github.com/katalvlaran/ndhist/ndindex"
)

// NBins returns a copy of the per-dimension bin counts.
func (h *Histogram[T]) NBins() []int { return h.grid.NBins() }

// Limits returns a copy of the per-dimension limits.
func (h *Histogram[T]) Limits() []ndindex.Range[T] { return h.grid.Limits() }

// BinSizes returns a copy of the per-dimension bin widths.
func (h *Histogram[T]) BinSizes() []T { return h.grid.BinSizes() }

// Grid returns the histogram's immutable bin geometry.
func (h *Histogram[T]) Grid() Grid[T] { return h.grid }

// Dims returns the number of spatial dimensions D.
func (h *Histogram[T]) Dims() int { return h.grid.Dims() }

// NDimsData returns the number of channels per spatial bin.
func (h *Histogram[T]) NDimsData() int { return h.nDimsData }

// Values returns a copy of the flat bin storage, nDimsData*Π nBins long,
// laid out as flatten(coords)*nDimsData + channel.
func (h *Histogram[T]) Values() []T { return h.bins.Data() }

// Entries returns the number of updates that landed in a bin.
func (h *Histogram[T]) Entries() int { return h.entries }

// Dropped returns the number of updates discarded as out of range.
func (h *Histogram[T]) Dropped() int { return h.dropped }

// At returns a copy of the nDimsData channel values of the spatial bin at coords.
// Errors: ErrDimensionMismatch, ErrIndexOutOfRange.
func (h *Histogram[T]) At(coords []int) ([]T, error) {
	if err := ndindex.ValidateCoords(coords, h.grid.nBins); err != nil {
		return nil, histErrorf("At", err)
	}
	row, err := ndindex.Flatten(coords, h.grid.nBins)
	if err != nil {
		return nil, histErrorf("At", err)
	}
	vals, err := h.bins.Row(row)
	if err != nil {
		return nil, histErrorf("At", err)
	}

	return vals, nil
}

// Clone returns a deep copy sharing only the immutable grid and the volume strategy.
func (h *Histogram[T]) Clone() *Histogram[T] {
	return &Histogram[T]{
		grid:      h.grid,
		nDimsData: h.nDimsData,
		bins:      h.bins.Clone(),
		volume:    h.volume,
		entries:   h.entries,
		dropped:   h.dropped,
		coords:    make([]int, len(h.coords)),
	}
}

// String renders one line per spatial bin with its channel values.
func (h *Histogram[T]) String() string { return h.bins.String() }
