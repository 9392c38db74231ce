package geometry

import (
	"github.com/katalvlaran/ndhist/histogram"
	"github.com/katalvlaran/ndhist/ndindex"
)

var (
	_ histogram.Volumer[float64] = Unit[float64]{}
	_ histogram.Volumer[float64] = Box[float64]{}
)

// Unit gives every bin volume 1.
type Unit[T ndindex.Real] struct{}

// BinVolume returns 1.
func (Unit[T]) BinVolume(histogram.Grid[T], []int) T { return 1 }

// Box gives every bin the Cartesian volume Π BinSize(d), the same for all bins
// of a regular grid. Normalizing with Box turns counts into densities per unit
// of the grid's measure.
type Box[T ndindex.Real] struct{}

// BinVolume returns the product of all bin widths.
func (Box[T]) BinVolume(g histogram.Grid[T], _ []int) T {
	vol := T(1)
	for d := 0; d < g.Dims(); d++ {
		vol *= g.BinSize(d)
	}

	return vol
}
