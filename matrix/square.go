package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrNegativeCapacity indicates that WithCapacity was given a negative hint.
var ErrNegativeCapacity = errors.New("matrix: capacity must be non-negative")

// unsetGlyph marks an unset cell in the String rendering.
const unsetGlyph = "∞"

// squareErrorf wraps an underlying error with Square method context.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// cell is a single optional entry: a weight plus a presence flag.
type cell struct {
	weight int64
	set    bool
}

// Square is a growable n×n matrix of optional weights. Each cell is either
// unset (no edge) or holds an int64 weight; zero is a valid weight, distinct
// from unset. The zero dimension is a legal starting state.
type Square struct {
	cells [][]cell
	cap   int // preallocation hint; 0 means none
}

// Option configures a Square at construction time.
type Option func(*Square)

// WithCapacity preallocates the matrix for an expected final dimension n,
// so repeated Grow calls avoid reallocating the row list. The dimension
// itself still starts at zero. Panics on a negative n: invalid option
// arguments are programmer errors.
func WithCapacity(n int) Option {
	return func(m *Square) {
		if n < 0 {
			panic(ErrNegativeCapacity.Error())
		}
		m.cap = n
	}
}

// New creates an empty 0×0 Square. Options are applied in order.
// Complexity: O(1) plus any preallocation requested via WithCapacity.
func New(opts ...Option) *Square {
	m := &Square{}
	var opt Option
	for _, opt = range opts {
		opt(m)
	}
	m.cells = make([][]cell, 0, m.cap)

	return m
}

// Size returns the current dimension n. Rows and columns are always equal.
func (m *Square) Size() int {
	return len(m.cells)
}

// Grow appends one row and one column, leaving every new cell unset and
// every existing cell untouched, and returns the index of the new row and
// column. Complexity: amortized O(n).
func (m *Square) Grow() int {
	n := len(m.cells)

	// 1) Widen every existing row by one unset cell.
	for i := range m.cells {
		m.cells[i] = append(m.cells[i], cell{})
	}

	// 2) Append the new row, sized to the new dimension.
	row := make([]cell, n+1, max(m.cap, n+1))
	m.cells = append(m.cells, row)

	return n
}

// check validates that (row, col) addresses an existing cell.
func (m *Square) check(method string, row, col int) error {
	n := len(m.cells)
	if row < 0 || row >= n || col < 0 || col >= n {
		return squareErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return nil
}

// Set writes weight into the cell at (row, col), marking it present.
// Overwriting an already-set cell is permitted here; single-edge policy is
// enforced by the graph layer. Complexity: O(1).
func (m *Square) Set(row, col int, weight int64) error {
	if err := m.check("Set", row, col); err != nil {
		return err
	}
	m.cells[row][col] = cell{weight: weight, set: true}

	return nil
}

// At reads the cell at (row, col). The boolean reports whether the cell is
// set; when false the weight is zero and carries no meaning.
// Complexity: O(1).
func (m *Square) At(row, col int) (int64, bool, error) {
	if err := m.check("At", row, col); err != nil {
		return 0, false, err
	}
	c := m.cells[row][col]

	return c.weight, c.set, nil
}

// Has reports whether the cell at (row, col) is set. Complexity: O(1).
func (m *Square) Has(row, col int) (bool, error) {
	if err := m.check("Has", row, col); err != nil {
		return false, err
	}

	return m.cells[row][col].set, nil
}

// Clone returns a deep copy of the Square sharing no state with the
// receiver. Complexity: O(n²).
func (m *Square) Clone() *Square {
	dup := &Square{
		cells: make([][]cell, len(m.cells)),
		cap:   m.cap,
	}
	for i, row := range m.cells {
		dup.cells[i] = make([]cell, len(row))
		copy(dup.cells[i], row)
	}

	return dup
}

// String implements fmt.Stringer with the fixed-width debugging view:
// a header row of column indices, then one row per index, each field the
// decimal weight or ∞ for unset cells, left-justified to three runes plus
// a separating space. Complexity: O(n²).
func (m *Square) String() string {
	var b strings.Builder
	n := len(m.cells)

	// Header row of column indices.
	fmt.Fprintf(&b, "%-3s ", "")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%-3d ", i)
	}
	b.WriteByte('\n')

	// One row per index.
	for i, row := range m.cells {
		fmt.Fprintf(&b, "%-3d ", i)
		for _, c := range row {
			if c.set {
				fmt.Fprintf(&b, "%-3d ", c.weight)
			} else {
				fmt.Fprintf(&b, "%-3s ", unsetGlyph)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
