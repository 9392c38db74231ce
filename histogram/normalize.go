// SPDX-License-Identifier: MIT

package histogram

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndhist/internal/monitoring"
	"github.com/katalvlaran/ndhist/ndindex"
)

// Normalize divides every channel of every spatial bin by that bin's volume as
// reported by the histogram's Volumer. With the default strategy all volumes
// are 1 and values do not change.
//
// Stage 1 (Prepare): compute the volume of every spatial bin and reject any
// volume that is zero, negative, NaN or infinite with ErrInvalidVolume.
// Stage 2 (Execute): divide each row of the storage by its volume.
//
// Normalize is a one-shot transform: calling it twice divides twice. On error
// the storage is left unchanged.
// Complexity: O(Π nBins · (D + nDimsData)) time, O(Π nBins) extra memory.
func (h *Histogram[T]) Normalize() error {
	volumes := make([]T, h.bins.Rows())
	for r := range volumes {
		coords, err := ndindex.Unflatten(h.grid.nBins, r)
		if err != nil {
			return histErrorf("Normalize", err)
		}
		v := h.volume.BinVolume(h.grid, coords)
		if !validVolume(v) {
			monitoring.Logf("histogram: normalize rejected: bin %v has volume %g", coords, float64(v))
			return histErrorf("Normalize", fmt.Errorf("bin %v volume %g: %w", coords, float64(v), ErrInvalidVolume))
		}
		volumes[r] = v
	}

	for r, v := range volumes {
		if err := h.bins.ScaleRow(r, v); err != nil {
			return histErrorf("Normalize", err)
		}
	}

	return nil
}

// validVolume reports whether v is usable as a divisor.
func validVolume[T ndindex.Real](v T) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 1)
}
