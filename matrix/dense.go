// Dense stores rows×cols scalars in a single slice: one row per spatial bin,
// one column per payload channel, so element (r, c) lives at r*cols + c.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndhist/ndindex"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T ndindex.Real] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0 and rows*cols fits in an int.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense[T ndindex.Real](rows, cols int) (*Dense[T], error) {
	if _, err := ndindex.Size([]int{rows, cols}); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int {
	return m.c
}

// Len returns rows*cols, the length of the backing slice.
func (m *Dense[T]) Len() int {
	return len(m.data)
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates v into (row, col).
// Complexity: O(1).
func (m *Dense[T]) Add(row, col int, v T) error {
	idx, err := m.indexOf("Add", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += v

	return nil
}

// Row returns a copy of row r.
func (m *Dense[T]) Row(row int) ([]T, error) {
	start, err := m.indexOf("Row", row, 0)
	if err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[start:start+m.c])

	return out, nil
}

// ScaleRow divides every element of row r by div.
// Division by zero follows IEEE-754 and is the caller's responsibility.
// Complexity: O(cols).
func (m *Dense[T]) ScaleRow(row int, div T) error {
	start, err := m.indexOf("ScaleRow", row, 0)
	if err != nil {
		return err
	}
	for i := start; i < start+m.c; i++ {
		m.data[i] /= div
	}

	return nil
}

// Data returns a copy of the flat row-major backing slice.
// Complexity: O(r*c).
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", float64(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
