package plotview

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/ndhist/histogram"
	"github.com/katalvlaran/ndhist/ndindex"
)

var (
	// ErrNotTwoDimensional indicates a heat map was requested for a histogram with D != 2.
	ErrNotTwoDimensional = errors.New("plotview: histogram must be two-dimensional")

	// ErrNotOneDimensional indicates a profile was requested for a histogram with D != 1.
	ErrNotOneDimensional = errors.New("plotview: histogram must be one-dimensional")

	// ErrChannel indicates a channel index outside [0, NDimsData).
	ErrChannel = errors.New("plotview: channel out of range")
)

// heatColors is the number of palette entries used by HeatMapPlot.
const heatColors = 16

var _ plotter.GridXYZ = (*Grid)(nil)

// Grid is a snapshot of one channel of a 2-D histogram as a plotter.GridXYZ.
// Column c is bin c of dimension 0, row r is bin r of dimension 1.
type Grid struct {
	cols, rows int
	x, y       []float64 // bin centres
	z          []float64 // z[c*rows+r]
}

// NewGrid snapshots channel of h.
func NewGrid[T ndindex.Real](h *histogram.Histogram[T], channel int) (*Grid, error) {
	if h.Dims() != 2 {
		return nil, fmt.Errorf("NewGrid: %d dimensions: %w", h.Dims(), ErrNotTwoDimensional)
	}
	if channel < 0 || channel >= h.NDimsData() {
		return nil, fmt.Errorf("NewGrid: channel %d: %w", channel, ErrChannel)
	}

	g := h.Grid()
	nd := h.NDimsData()
	vals := h.Values()
	out := &Grid{
		cols: g.NBin(0),
		rows: g.NBin(1),
		x:    centres(g, 0),
		y:    centres(g, 1),
		z:    make([]float64, g.NumBins()),
	}
	for s := range out.z {
		out.z[s] = float64(vals[s*nd+channel])
	}

	return out, nil
}

// Dims implements plotter.GridXYZ.
func (g *Grid) Dims() (c, r int) { return g.cols, g.rows }

// Z implements plotter.GridXYZ.
func (g *Grid) Z(c, r int) float64 { return g.z[c*g.rows+r] }

// X implements plotter.GridXYZ.
func (g *Grid) X(c int) float64 { return g.x[c] }

// Y implements plotter.GridXYZ.
func (g *Grid) Y(r int) float64 { return g.y[r] }

// ZRange returns the smallest and largest channel values.
func (g *Grid) ZRange() (lo, hi float64) {
	return floats.Min(g.z), floats.Max(g.z)
}

// HeatMapPlot returns a plot holding a heat map of g. A constant grid gets a
// unit-wide colour scale so the palette stays well defined.
func HeatMapPlot(g *Grid, title string) *plot.Plot {
	hm := plotter.NewHeatMap(g, palette.Heat(heatColors, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "dim 0"
	p.Y.Label.Text = "dim 1"
	p.Add(hm)

	return p
}

// centres returns the bin centres of dimension d.
func centres[T ndindex.Real](g histogram.Grid[T], d int) []float64 {
	out := make([]float64, g.NBin(d))
	for i := range out {
		out[i] = float64(g.BinCenter(d, i))
	}

	return out
}
