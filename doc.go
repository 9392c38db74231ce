// Package ndhist is a small, generic N-dimensional histogram toolkit: bin
// weighted or unweighted points on a regular grid over a bounded domain and
// normalize the result by bin volume.
//
// 🚀 What is in the box?
//
//	• ndindex/    — bin index, row-major flatten/unflatten, bounds checks
//	• matrix/     — generic row-major Dense storage (spatial bins × channels)
//	• histogram/  — the engine: New, Update, UpdateWeighted, Normalize, accessors
//	• geometry/   — bin-volume strategies: Unit, Box, Cylindrical
//	• plotview/   — gonum/plot heat maps and profiles of 1-D/2-D histograms
//
// ✨ Why ndhist?
//
//   - Generic over float32 and float64
//   - Out-of-range samples are dropped and counted, never fatal
//   - Pluggable normalization: pass a Volumer instead of subclassing
//   - Every accessor hands back a copy; no aliasing of internal storage
//
// Quick ASCII example (nBins = [2, 3]):
//
//	    (0,0) (0,1) (0,2)        0 1 2
//	    (1,0) (1,1) (1,2)   →    3 4 5
//
// A Histogram is single-owner and not safe for concurrent mutation.
//
//	go get github.com/katalvlaran/ndhist/histogram
package ndhist
