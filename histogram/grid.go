package histogram

import (
	"github.com/katalvlaran/ndhist/ndindex"
)

// Grid is the immutable bin geometry of a histogram: bin counts, limits and
// derived bin sizes, one entry per dimension.
//
// The slice accessors return copies. The per-dimension accessors (NBin, Limit,
// BinSize) do not allocate and are meant for volume strategies, which are
// called once per spatial bin.
type Grid[T ndindex.Real] struct {
	nBins    []int
	limits   []ndindex.Range[T]
	binSizes []T
}

// newGrid copies nBins and limits and derives the bin sizes.
// Inputs are assumed validated by New.
func newGrid[T ndindex.Real](nBins []int, limits []ndindex.Range[T]) (Grid[T], error) {
	sizes, err := ndindex.BinSizes(limits, nBins)
	if err != nil {
		return Grid[T]{}, err
	}

	g := Grid[T]{
		nBins:    make([]int, len(nBins)),
		limits:   make([]ndindex.Range[T], len(limits)),
		binSizes: sizes,
	}
	copy(g.nBins, nBins)
	copy(g.limits, limits)

	return g, nil
}

// Dims returns the number of dimensions D.
func (g Grid[T]) Dims() int { return len(g.nBins) }

// NBin returns the bin count of dimension d.
func (g Grid[T]) NBin(d int) int { return g.nBins[d] }

// Limit returns the limits of dimension d.
func (g Grid[T]) Limit(d int) ndindex.Range[T] { return g.limits[d] }

// BinSize returns the bin width of dimension d.
func (g Grid[T]) BinSize(d int) T { return g.binSizes[d] }

// NBins returns a copy of the bin counts.
func (g Grid[T]) NBins() []int {
	out := make([]int, len(g.nBins))
	copy(out, g.nBins)

	return out
}

// Limits returns a copy of the per-dimension limits.
func (g Grid[T]) Limits() []ndindex.Range[T] {
	out := make([]ndindex.Range[T], len(g.limits))
	copy(out, g.limits)

	return out
}

// BinSizes returns a copy of the per-dimension bin widths.
func (g Grid[T]) BinSizes() []T {
	out := make([]T, len(g.binSizes))
	copy(out, g.binSizes)

	return out
}

// NumBins returns the number of spatial bins Π nBins[d].
func (g Grid[T]) NumBins() int {
	n := 1
	for _, b := range g.nBins {
		n *= b
	}

	return n
}

// BinLow returns the lower edge of bin i along dimension d.
func (g Grid[T]) BinLow(d, i int) T {
	return g.limits[d].Min + T(i)*g.binSizes[d]
}

// BinCenter returns the centre of bin i along dimension d.
func (g Grid[T]) BinCenter(d, i int) T {
	return g.limits[d].Min + (T(i)+0.5)*g.binSizes[d]
}
