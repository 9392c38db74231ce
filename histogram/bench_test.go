package histogram_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndhist/histogram"
	"github.com/katalvlaran/ndhist/ndindex"
)

// benchPoints returns n pseudo-random 3-D points in [0, 1)³, about 10% of
// them pushed out of range.
func benchPoints(n int) [][]float64 {
	rng := rand.New(rand.NewSource(1))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{rng.Float64()*1.1 - 0.05, rng.Float64(), rng.Float64()}
	}

	return pts
}

func benchHistogram(b *testing.B, nDimsData int) *histogram.Histogram[float64] {
	b.Helper()
	limits := []ndindex.Range[float64]{{Min: 0, Max: 1}, {Min: 0, Max: 1}, {Min: 0, Max: 1}}
	h, err := histogram.New([]int{32, 32, 32}, nDimsData, limits)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return h
}

// BenchmarkUpdate measures unweighted accumulation into a 32³ grid.
func BenchmarkUpdate(b *testing.B) {
	h := benchHistogram(b, 1)
	pts := benchPoints(4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := h.Update(pts[i%len(pts)]); err != nil {
			b.Fatalf("Update failed: %v", err)
		}
	}
}

// BenchmarkUpdateWeighted measures 3-channel weighted accumulation.
func BenchmarkUpdateWeighted(b *testing.B) {
	h := benchHistogram(b, 3)
	pts := benchPoints(4096)
	w := []float64{1, 2, 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := h.UpdateWeighted(pts[i%len(pts)], w); err != nil {
			b.Fatalf("UpdateWeighted failed: %v", err)
		}
	}
}

// BenchmarkNormalize measures a full normalization pass over 32³ bins.
func BenchmarkNormalize(b *testing.B) {
	h := benchHistogram(b, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := h.Normalize(); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}
