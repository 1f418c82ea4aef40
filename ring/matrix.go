package ring

import "fmt"

// Matrix is a dense matrix of polynomials over one ring, stored in a flat
// row-major backing slice. Entries default to the zero polynomial.
// Shape is fixed at construction; At/Set are bounds-checked.
type Matrix struct {
	ring *Ring
	rows int
	cols int
	data []Polynomial
}

// NewMatrix allocates a rows x cols zero matrix over R.
// Dimensions must be non-negative; a zero-sized side is legal and denotes a
// map from or to the zero module. Returns ErrBadShape otherwise.
func NewMatrix(R *Ring, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	data := make([]Polynomial, rows*cols)
	for i := range data {
		data[i] = R.Zero()
	}

	return &Matrix{ring: R, rows: rows, cols: cols, data: data}, nil
}

// NRows returns the number of rows. Time: O(1).
func (m *Matrix) NRows() int { return m.rows }

// NCols returns the number of columns. Time: O(1).
func (m *Matrix) NCols() int { return m.cols }

// Ring returns the ring the entries live over.
func (m *Matrix) Ring() *Ring { return m.ring }

// At retrieves the entry at (i, j). Returns ErrOutOfRange on bad indices.
// Time: O(1).
func (m *Matrix) At(i, j int) (Polynomial, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return Polynomial{}, fmt.Errorf("At(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns the entry at (i, j). Returns ErrOutOfRange on bad indices and
// ErrDimensionMismatch when p belongs to a different ring. Time: O(1).
func (m *Matrix) Set(i, j int, p Polynomial) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if p.NGens() != m.ring.NGens() {
		return fmt.Errorf("entry over wrong ring: %w", ErrDimensionMismatch)
	}
	m.data[i*m.cols+j] = p

	return nil
}
