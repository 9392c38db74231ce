// Package histogram accumulates weighted or unweighted data points into a
// regular N-dimensional grid of bins and normalizes them by bin volume.
//
// 🚀 What is a Histogram here?
//
//	A fixed grid of D dimensions, each split into nBins[d] equal bins over a
//	closed [Min, Max] interval, with nDimsData scalar channels per spatial bin
//	(1 for a scalar field, 3 for a vector field, …).
//
//	    nBins = [2, 3], nDimsData = 2
//
//	    spatial bin     (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
//	    storage slots   0 1   2 3   4 5   6 7   8 9   10 11
//
// ✨ Key features:
//   - generic over float32/float64 (ndindex.Real)
//   - out-of-range points are dropped silently and counted, never an error
//   - weighted updates add one weight per channel
//   - pluggable bin-volume strategy for density normalization (Volumer);
//     the default divides by 1, see package geometry for Box and Cylindrical
//   - every accessor returns a copy; the caller owns the only reference
//
// ⚙️ Usage:
//
//	h, err := histogram.New([]int{10, 10}, 1, []ndindex.Range[float64]{
//		{Min: 0, Max: 1}, {Min: -1, Max: 1},
//	})
//	if err != nil {
//		// ErrDimensionMismatch, ErrInvalidBinCount, ErrInvalidLimits, …
//	}
//	_ = h.Update([]float64{0.25, 0.5})
//	_ = h.Normalize()
//	counts := h.Values()
//
// Unweighted Update increments only channel 0 of the target bin, even when
// nDimsData > 1. Use UpdateWeighted to feed every channel.
//
// Concurrency: a Histogram is not safe for concurrent use. Guard it with a
// mutex, or fill one histogram per goroutine and merge the Values afterwards.
package histogram
