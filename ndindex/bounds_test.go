package ndindex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndhist/ndindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	limits := []ndindex.Range[float64]{{Min: 0, Max: 2}, {Min: -1, Max: 1}}

	cases := []struct {
		name  string
		point []float64
		want  bool
	}{
		{"interior", []float64{1, 0}, true},
		{"lower corner inclusive", []float64{0, -1}, true},
		{"upper corner inclusive", []float64{2, 1}, true},
		{"first dim below", []float64{-0.01, 0}, false},
		{"second dim above", []float64{1, 1.01}, false},
		{"NaN", []float64{math.NaN(), 0}, false},
		{"+Inf", []float64{1, math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := ndindex.InBounds(tc.point, limits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestInBounds_DimensionMismatch(t *testing.T) {
	limits := []ndindex.Range[float64]{{Min: 0, Max: 1}}
	ok, err := ndindex.InBounds([]float64{0.5, 0.5}, limits)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ndindex.ErrDimensionMismatch)
}

func TestValidateCoords(t *testing.T) {
	assert.NoError(t, ndindex.ValidateCoords([]int{1, 2}, []int{2, 3}))
	assert.ErrorIs(t, ndindex.ValidateCoords([]int{2, 0}, []int{2, 3}), ndindex.ErrIndexOutOfRange)
	assert.ErrorIs(t, ndindex.ValidateCoords([]int{-1, 0}, []int{2, 3}), ndindex.ErrIndexOutOfRange)
	assert.ErrorIs(t, ndindex.ValidateCoords([]int{0}, []int{2, 3}), ndindex.ErrDimensionMismatch)
}

func TestValidateLimits(t *testing.T) {
	assert.NoError(t, ndindex.ValidateLimits([]ndindex.Range[float64]{{Min: -1, Max: 1}}))

	bad := [][]ndindex.Range[float64]{
		{{Min: 1, Max: 1}},
		{{Min: 2, Max: 1}},
		{{Min: math.NaN(), Max: 1}},
		{{Min: 0, Max: math.Inf(1)}},
	}
	for _, limits := range bad {
		assert.ErrorIs(t, ndindex.ValidateLimits(limits), ndindex.ErrInvalidLimits, "%v", limits)
	}
}

func TestBinSizes(t *testing.T) {
	sizes, err := ndindex.BinSizes([]ndindex.Range[float64]{{Min: 1, Max: 20}, {Min: 5, Max: 10}}, []int{10, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.9, 0.5}, sizes, 1e-12)

	_, err = ndindex.BinSizes([]ndindex.Range[float64]{{Min: 0, Max: 1}}, []int{1, 1})
	assert.ErrorIs(t, err, ndindex.ErrDimensionMismatch)

	_, err = ndindex.BinSizes([]ndindex.Range[float64]{{Min: 0, Max: 1}}, []int{0})
	assert.ErrorIs(t, err, ndindex.ErrInvalidBinCount)
}

func TestRange(t *testing.T) {
	r := ndindex.Range[float32]{Min: -2, Max: 6}
	assert.Equal(t, float32(8), r.Width())
	assert.True(t, r.Contains(-2))
	assert.False(t, r.Contains(6.5))
}
