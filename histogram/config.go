package histogram

import (
	"fmt"

	"github.com/katalvlaran/ndhist/ndindex"
)

// Config is a declarative description of a histogram grid. The JSON tags let a
// host program decode it from its own configuration; this package does no I/O.
//
//	{"n_bins": [10, 10], "n_dims_data": 2, "limits": [[1, 20], [5, 10]]}
type Config struct {
	NBins     []int        `json:"n_bins"`
	NDimsData int          `json:"n_dims_data,omitempty"` // 0 means 1
	Limits    [][2]float64 `json:"limits"`
}

// GetNDimsData returns NDimsData, or 1 when it was omitted.
func (c *Config) GetNDimsData() int {
	if c.NDimsData == 0 {
		return 1
	}

	return c.NDimsData
}

// Validate checks the configuration with the same rules and errors as New.
func (c *Config) Validate() error {
	if len(c.NBins) != len(c.Limits) {
		return fmt.Errorf("config: %d bin counts for %d limits: %w", len(c.NBins), len(c.Limits), ErrDimensionMismatch)
	}
	if len(c.NBins) == 0 {
		return fmt.Errorf("config: %w", ErrEmptyGrid)
	}
	for d, n := range c.NBins {
		if n <= 0 {
			return fmt.Errorf("config: n_bins[%d] = %d: %w", d, n, ErrInvalidBinCount)
		}
	}
	if c.GetNDimsData() < 0 {
		return fmt.Errorf("config: n_dims_data = %d: %w", c.NDimsData, ErrInvalidDataDims)
	}
	if err := ndindex.ValidateLimits(rangesOf[float64](c.Limits)); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// NewFromConfig validates cfg and builds the histogram it describes.
func NewFromConfig[T ndindex.Real](cfg Config, opts ...Option[T]) (*Histogram[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, histErrorf("NewFromConfig", err)
	}

	return New(cfg.NBins, cfg.GetNDimsData(), rangesOf[T](cfg.Limits), opts...)
}

// rangesOf converts [min, max] pairs into Ranges of T.
func rangesOf[T ndindex.Real](pairs [][2]float64) []ndindex.Range[T] {
	out := make([]ndindex.Range[T], len(pairs))
	for d, p := range pairs {
		out[d] = ndindex.Range[T]{Min: T(p[0]), Max: T(p[1])}
	}

	return out
}
