// Package ndindex converts between multi-dimensional bin coordinates and flat
// row-major storage offsets, and checks data points against per-dimension limits.
//
// 🚀 What lives here?
//
//	The pure, stateless arithmetic underneath an N-dimensional histogram:
//	  • BinIndex   — value → zero-based bin coordinate along one axis
//	  • Flatten    — (i_0, …, i_{D-1}) → flat offset (row-major)
//	  • Unflatten  — flat offset → (i_0, …, i_{D-1})
//	  • InBounds   — closed-interval limits check for a data point
//	  • Size, Strides, BinSizes, Validate* helpers
//
// Layout:
//
//	offset = i_{D-1} + Σ_{j=0}^{D-2} i_j · Π_{k=j+1}^{D-1} n_k
//
//	e.g. nBins = [2, 3]:
//
//	    (0,0)=0  (0,1)=1  (0,2)=2
//	    (1,0)=3  (1,1)=4  (1,2)=5
//
// Contracts:
//   - BinIndex never clamps; out-of-range values map to out-of-range indices.
//   - Flatten never range-checks coordinates; call ValidateCoords first when
//     the coordinates come from an untrusted source.
//   - Unflatten returns a freshly allocated slice owned by the caller.
//
// Every function is O(D) and allocation-free except Unflatten, Strides and
// BinSizes, which return new slices.
package ndindex
