package gf2

import (
	"fmt"
	"strings"
)

// Matrix is a row-major binary matrix. Each row is a *Vector of length Cols().
type Matrix struct {
	r, c int       // number of rows and columns
	rows []*Vector // len(rows) == r, rows[i].Len() == c
}

// NewMatrix creates an r×c zero matrix.
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Prepare): allocate one bitset-backed row per matrix row.
// Complexity: O(r·c/64).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newMatrix(rows, cols), nil
}

func newMatrix(rows, cols int) *Matrix {
	m := &Matrix{r: rows, c: cols, rows: make([]*Vector, rows)}
	for i := range m.rows {
		m.rows[i] = mustVector(cols)
	}

	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, true)
	}

	return m, nil
}

// MatrixFromRows builds a matrix from 0/1 rows of equal length.
func MatrixFromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("MatrixFromRows: %w", ErrBadShape)
	}
	m := newMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("MatrixFromRows: row %d has %d cols, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, b := range row {
			if b != 0 {
				m.rows[i].Set(j, true)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// At returns entry (i, j), or ErrOutOfRange.
func (m *Matrix) At(i, j int) (bool, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.rows[i].Bit(j), nil
}

// Set assigns entry (i, j), or returns ErrOutOfRange.
func (m *Matrix) Set(i, j int, b bool) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.rows[i].Set(j, b)

	return nil
}

// Row returns row i by reference. Mutating the result mutates m;
// use Clone on the result for an independent copy.
func (m *Matrix) Row(i int) *Vector { return m.rows[i] }

// SetRow copies v into row i.
func (m *Matrix) SetRow(i int, v *Vector) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Matrix.SetRow(%d): %w", i, ErrOutOfRange)
	}
	if v.Len() != m.c {
		return fmt.Errorf("Matrix.SetRow(%d): len %d, want %d: %w", i, v.Len(), m.c, ErrDimensionMismatch)
	}
	m.rows[i] = v.Clone()

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, rows: make([]*Vector, m.r)}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// Equal reports whether m and o have identical shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is a square identity matrix.
func (m *Matrix) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	for i, row := range m.rows {
		if row.Weight() != 1 || !row.Bit(i) {
			return false
		}
	}

	return true
}

// Transpose returns mᵀ.
// Complexity: O(r·c).
func (m *Matrix) Transpose() *Matrix {
	out := newMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.rows[i].Bit(j) {
				out.rows[j].Set(i, true)
			}
		}
	}

	return out
}

// VecMul returns the row vector v·m.
// Returns ErrDimensionMismatch when v.Len() != m.Rows().
// Complexity: O(r·c/64): XOR of the rows selected by v.
func VecMul(v *Vector, m *Matrix) (*Vector, error) {
	if v.Len() != m.r {
		return nil, fmt.Errorf("VecMul: len %d vs %d rows: %w", v.Len(), m.r, ErrDimensionMismatch)
	}
	out := mustVector(m.c)
	for i := 0; i < m.r; i++ {
		if v.Bit(i) {
			out.bits.InPlaceSymmetricDifference(m.rows[i].bits)
		}
	}

	return out, nil
}

// Mul returns the product a·b over GF(2).
// Stage 1 (Validate): a.Cols() == b.Rows().
// Stage 2 (Execute): row i of the product is rowᵢ(a)·b.
// Complexity: O(r·k·c/64).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Matrix{r: a.r, c: b.c, rows: make([]*Vector, a.r)}
	for i := 0; i < a.r; i++ {
		row, err := VecMul(a.rows[i], b)
		if err != nil {
			return nil, fmt.Errorf("Mul: %w", err)
		}
		out.rows[i] = row
	}

	return out, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination on the augmented [m | I].
// Stage 1 (Validate): m must be square.
// Stage 2 (Eliminate): for each column pick the first row at or below the
// diagonal with a 1, swap it up, and clear the column in every other row.
// Stage 3 (Finalize): the right half of the augmented matrix is m⁻¹.
// Returns ErrSingular when some column has no pivot.
// Complexity: O(n³/64).
func Inverse(m *Matrix) (*Matrix, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	n := m.r
	work := m.Clone()
	inv, _ := Identity(n)

	var col, row, pivot int
	for col = 0; col < n; col++ {
		pivot = -1
		for row = col; row < n; row++ {
			if work.rows[row].Bit(col) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("Inverse: no pivot in column %d: %w", col, ErrSingular)
		}
		work.rows[col], work.rows[pivot] = work.rows[pivot], work.rows[col]
		inv.rows[col], inv.rows[pivot] = inv.rows[pivot], inv.rows[col]

		for row = 0; row < n; row++ {
			if row != col && work.rows[row].Bit(col) {
				work.rows[row].bits.InPlaceSymmetricDifference(work.rows[col].bits)
				inv.rows[row].bits.InPlaceSymmetricDifference(inv.rows[col].bits)
			}
		}
	}

	return inv, nil
}

// Rank returns the GF(2) rank of m.
func (m *Matrix) Rank() int {
	work := m.Clone()
	rank := 0
	for col := 0; col < m.c && rank < m.r; col++ {
		pivot := -1
		for row := rank; row < m.r; row++ {
			if work.rows[row].Bit(col) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work.rows[rank], work.rows[pivot] = work.rows[pivot], work.rows[rank]
		for row := 0; row < m.r; row++ {
			if row != rank && work.rows[row].Bit(col) {
				work.rows[row].bits.InPlaceSymmetricDifference(work.rows[rank].bits)
			}
		}
		rank++
	}

	return rank
}

// String renders one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
