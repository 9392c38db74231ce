package plotview

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/ndhist/histogram"
	"github.com/katalvlaran/ndhist/ndindex"
)

// NewProfile snapshots channel of a 1-D histogram as (bin centre, value) pairs.
func NewProfile[T ndindex.Real](h *histogram.Histogram[T], channel int) (plotter.XYs, error) {
	if h.Dims() != 1 {
		return nil, fmt.Errorf("NewProfile: %d dimensions: %w", h.Dims(), ErrNotOneDimensional)
	}
	if channel < 0 || channel >= h.NDimsData() {
		return nil, fmt.Errorf("NewProfile: channel %d: %w", channel, ErrChannel)
	}

	g := h.Grid()
	nd := h.NDimsData()
	vals := h.Values()
	pts := make(plotter.XYs, g.NBin(0))
	for i := range pts {
		pts[i] = plotter.XY{X: float64(g.BinCenter(0, i)), Y: float64(vals[i*nd+channel])}
	}

	return pts, nil
}

// ProfilePlot returns a plot with pts drawn as a line.
func ProfilePlot(pts plotter.XYs, title string) (*plot.Plot, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("ProfilePlot: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "dim 0"
	p.Y.Label.Text = "value"
	p.Add(line)

	return p, nil
}
