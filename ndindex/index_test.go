package ndindex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndhist/ndindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinIndex_Table covers origin shifting and the absence of clamping.
func TestBinIndex_Table(t *testing.T) {
	cases := []struct {
		name        string
		value, size float64
		offset      float64
		want        int
	}{
		{"origin", 0, 1, 0, 0},
		{"interior", 5, 1, 0, 5},
		{"shifted origin", 7.5, 2.5, 5, 1},
		{"min maps to zero", 1, 1.9, 1, 0},
		{"floor of both terms", 2.8, 1.9, 1, 1},
		{"below range is negative", -0.5, 1, 0, -1},
		{"above range is not clamped", 20, 1.9, 1, 10},
		{"negative domain", -3.5, 1, -4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ndindex.BinIndex(tc.value, tc.size, tc.offset))
		})
	}
}

// TestBinIndex_Float32 ensures the generic form works for narrower floats.
func TestBinIndex_Float32(t *testing.T) {
	assert.Equal(t, 3, ndindex.BinIndex[float32](3.2, 1, 0))
}

// TestSize validates shape product and its failure modes.
func TestSize(t *testing.T) {
	n, err := ndindex.Size([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	_, err = ndindex.Size(nil)
	assert.ErrorIs(t, err, ndindex.ErrEmptyShape)

	_, err = ndindex.Size([]int{3, 0})
	assert.ErrorIs(t, err, ndindex.ErrInvalidBinCount)

	_, err = ndindex.Size([]int{-1})
	assert.ErrorIs(t, err, ndindex.ErrInvalidBinCount)

	_, err = ndindex.Size([]int{math.MaxInt / 2, 3})
	assert.ErrorIs(t, err, ndindex.ErrShapeOverflow)
}

// TestStrides checks row-major strides.
func TestStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, ndindex.Strides([]int{2, 3, 4}))
	assert.Equal(t, []int{1}, ndindex.Strides([]int{7}))
	assert.Empty(t, ndindex.Strides(nil))
}

// TestFlatten_Values verifies the documented row-major formula.
func TestFlatten_Values(t *testing.T) {
	cases := []struct {
		coords, nBins []int
		want          int
	}{
		{[]int{4}, []int{10}, 4},
		{[]int{0, 0}, []int{2, 3}, 0},
		{[]int{0, 2}, []int{2, 3}, 2},
		{[]int{1, 0}, []int{2, 3}, 3},
		{[]int{1, 2}, []int{2, 3}, 5},
		{[]int{1, 2, 3}, []int{2, 3, 4}, 23},
		{[]int{0, 1, 0}, []int{3, 3, 3}, 3},
	}
	for _, tc := range cases {
		got, err := ndindex.Flatten(tc.coords, tc.nBins)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "coords=%v nBins=%v", tc.coords, tc.nBins)
	}
}

// TestFlatten_Errors checks shape validation.
func TestFlatten_Errors(t *testing.T) {
	_, err := ndindex.Flatten(nil, nil)
	assert.ErrorIs(t, err, ndindex.ErrEmptyShape)

	_, err = ndindex.Flatten([]int{0}, []int{2, 2})
	assert.ErrorIs(t, err, ndindex.ErrDimensionMismatch)
}

// TestUnflatten_RoundTrip exhaustively checks Flatten(Unflatten(f)) == f.
func TestUnflatten_RoundTrip(t *testing.T) {
	shapes := [][]int{{1}, {5}, {2, 3}, {3, 1, 4}, {2, 2, 2, 2}, {10, 10}, {1, 1, 1}}
	for _, nBins := range shapes {
		size, err := ndindex.Size(nBins)
		require.NoError(t, err)
		for f := 0; f < size; f++ {
			coords, err := ndindex.Unflatten(nBins, f)
			require.NoError(t, err)
			require.Len(t, coords, len(nBins))
			require.NoError(t, ndindex.ValidateCoords(coords, nBins))

			back, err := ndindex.Flatten(coords, nBins)
			require.NoError(t, err)
			require.Equal(t, f, back, "nBins=%v coords=%v", nBins, coords)
		}
	}
}

// TestUnflatten_Values pins a few concrete decodings.
func TestUnflatten_Values(t *testing.T) {
	coords, err := ndindex.Unflatten([]int{2, 3, 4}, 23)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, coords)

	coords, err = ndindex.Unflatten([]int{3, 3, 3, 3}, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 0}, coords)
}

// TestUnflatten_Errors covers out-of-range offsets and invalid shapes.
func TestUnflatten_Errors(t *testing.T) {
	_, err := ndindex.Unflatten([]int{2, 3}, 6)
	assert.ErrorIs(t, err, ndindex.ErrIndexOutOfRange)

	_, err = ndindex.Unflatten([]int{2, 3}, -1)
	assert.ErrorIs(t, err, ndindex.ErrIndexOutOfRange)

	_, err = ndindex.Unflatten(nil, 0)
	assert.ErrorIs(t, err, ndindex.ErrEmptyShape)

	_, err = ndindex.Unflatten([]int{2, 0}, 0)
	assert.ErrorIs(t, err, ndindex.ErrInvalidBinCount)
}

// TestUnflatten_ReturnsOwnedSlice ensures successive calls do not share storage.
func TestUnflatten_ReturnsOwnedSlice(t *testing.T) {
	a, err := ndindex.Unflatten([]int{4, 4}, 5)
	require.NoError(t, err)
	b, err := ndindex.Unflatten([]int{4, 4}, 5)
	require.NoError(t, err)
	a[0] = 99
	assert.Equal(t, []int{1, 1}, b)
}
