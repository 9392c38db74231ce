package histogram

import "github.com/katalvlaran/ndhist/ndindex"

// Volumer computes the volume of one spatial bin for density normalization.
// coords holds the bin's D spatial coordinates; it is owned by the callee for
// the duration of the call only.
type Volumer[T ndindex.Real] interface {
	BinVolume(g Grid[T], coords []int) T
}

// VolumeFunc adapts an ordinary function to the Volumer interface.
type VolumeFunc[T ndindex.Real] func(g Grid[T], coords []int) T

// BinVolume calls f(g, coords).
func (f VolumeFunc[T]) BinVolume(g Grid[T], coords []int) T {
	return f(g, coords)
}

// GridValidator is implemented by volume strategies that only make sense for
// some grids (e.g. a cylindrical strategy needing radius, angle and height axes).
// New calls ValidateGrid once and fails construction with its error.
type GridValidator[T ndindex.Real] interface {
	ValidateGrid(g Grid[T]) error
}

// unitVolume is the default strategy: every bin has volume 1, so Normalize
// leaves values unchanged.
type unitVolume[T ndindex.Real] struct{}

func (unitVolume[T]) BinVolume(Grid[T], []int) T { return 1 }
