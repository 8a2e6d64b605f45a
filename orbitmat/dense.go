package orbitmat

import "fmt"

// Dense is a concrete row-major int64 matrix: rows are node indices,
// columns are orbit indices. data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []int64
}

// denseErrorf wraps err with the method and coordinates that triggered it,
// e.g. "Dense.At(3,77): orbitmat: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates a rows×cols matrix of zeros.
// Complexity: O(rows*cols) for the zero-fill performed by make.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// index computes the flat offset for (row, col), validating bounds.
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.index(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}
	return m.data[off], nil
}

// Set stores value at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, value int64) error {
	off, err := m.index(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[off] = value
	return nil
}

// Incr adds delta to the value at (row, col). It is the hot path used while
// accumulating graphlet contributions, avoiding a separate At+Set round trip.
// Complexity: O(1).
func (m *Dense) Incr(row, col int, delta int64) error {
	off, err := m.index(row, col)
	if err != nil {
		return denseErrorf("Incr", row, col, err)
	}
	m.data[off] += delta
	return nil
}

// sameShape reports whether m and other have identical dimensions.
func (m *Dense) sameShape(other *Dense) bool {
	return m.r == other.r && m.c == other.c
}

// Add returns a new matrix equal to m + other, element-wise.
// Complexity: O(r*c).
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if !m.sameShape(other) {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v + other.data[i]
	}
	return out, nil
}

// Sub returns a new matrix equal to m - other, element-wise.
// Complexity: O(r*c).
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if !m.sameShape(other) {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v - other.data[i]
	}
	return out, nil
}

// Equal reports whether m and other have the same shape and, element-wise,
// the same values.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || !m.sameShape(other) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Rows2D materialises the matrix as a slice of row slices, the shape
// network.Facade exposes to callers expecting int[N][73].
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]int64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}
	return out
}
