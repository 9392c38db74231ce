// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndhist/histogram"
	"github.com/katalvlaran/ndhist/ndindex"
)

var (
	_ histogram.Volumer[float64]       = Cylindrical[float64]{}
	_ histogram.GridValidator[float64] = Cylindrical[float64]{}
)

// Cylindrical computes annular-sector bin volumes for a grid whose dimensions
// R, Phi and Z hold radius, angle (radians) and height. For radial bin i:
//
//	V = π·((r_min+(i+1)Δr)² − (r_min+iΔr)²) · Δz · Δφ/(2π)
//
// Every channel of the bin is divided by V. Dimensions other than R, Phi and Z
// (if any) do not contribute to the volume.
type Cylindrical[T ndindex.Real] struct {
	R, Phi, Z int
}

// NewCylindrical returns the conventional layout: r on dimension 0, φ on 1, z on 2.
func NewCylindrical[T ndindex.Real]() Cylindrical[T] {
	return Cylindrical[T]{R: 0, Phi: 1, Z: 2}
}

// ValidateGrid requires R, Phi and Z to be distinct dimensions of g and the
// radial lower limit to be non-negative.
func (c Cylindrical[T]) ValidateGrid(g histogram.Grid[T]) error {
	d := g.Dims()
	for _, axis := range []int{c.R, c.Phi, c.Z} {
		if axis < 0 || axis >= d {
			return fmt.Errorf("cylindrical: axis %d of %d-D grid: %w", axis, d, ErrAxis)
		}
	}
	if c.R == c.Phi || c.R == c.Z || c.Phi == c.Z {
		return fmt.Errorf("cylindrical: axes r=%d phi=%d z=%d: %w", c.R, c.Phi, c.Z, ErrAxis)
	}
	if g.Limit(c.R).Min < 0 {
		return fmt.Errorf("cylindrical: r_min=%g: %w", float64(g.Limit(c.R).Min), ErrNegativeRadius)
	}

	return nil
}

// BinVolume returns the annular-sector volume of the bin at coords.
func (c Cylindrical[T]) BinVolume(g histogram.Grid[T], coords []int) T {
	rMin := float64(g.Limit(c.R).Min)
	dr := float64(g.BinSize(c.R))
	dphi := float64(g.BinSize(c.Phi))
	dz := float64(g.BinSize(c.Z))

	i := float64(coords[c.R])
	inner := rMin + i*dr
	outer := rMin + (i+1)*dr

	return T(math.Pi * (outer*outer - inner*inner) * dz * dphi / (2 * math.Pi))
}
