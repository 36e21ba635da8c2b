// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix is an immutable, rectangular, row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
//
// The zero value is the empty matrix: it has no rows, its column count is
// undefined, and every operation rejects it with ErrEmptyMatrix.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, len == r*c, owned
}

// New builds a Matrix from rows, copying the data.
//
// Errors:
//   - ErrEmptyMatrix if rows has no elements (column count undefined).
//   - ErrRaggedRows if any row's length differs from rows[0].
//
// A matrix with one or more rows of length zero is valid (shape r×0).
// Complexity: O(r*c).
func New(rows [][]float64) (Matrix, error) {
	if err := validateRows(rows); err != nil {
		return Matrix{}, matrixErrorf(opNew, err)
	}

	r, c := len(rows), len(rows[0])
	data := make([]float64, r*c)
	for i, row := range rows {
		copy(data[i*c:(i+1)*c], row)
	}

	m, err := assemble(r, c, data)
	if err != nil {
		return Matrix{}, matrixErrorf(opNew, err)
	}

	return m, nil
}

// Zeros returns the r×c additive identity.
// Errors: ErrEmptyMatrix if r <= 0; ErrDimensionMismatch if c < 0.
func Zeros(r, c int) (Matrix, error) {
	if r <= 0 {
		return Matrix{}, matrixErrorf(opZeros, ErrEmptyMatrix)
	}
	if c < 0 {
		return Matrix{}, errors.Wrapf(ErrDimensionMismatch, "matrix.%s: negative column count %d", opZeros, c)
	}

	m, err := assemble(r, c, make([]float64, r*c))
	if err != nil {
		return Matrix{}, matrixErrorf(opZeros, err)
	}

	return m, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrEmptyMatrix if n <= 0.
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, matrixErrorf(opIdentity, ErrEmptyMatrix)
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}

	m, err := assemble(n, n, data)
	if err != nil {
		return Matrix{}, matrixErrorf(opIdentity, err)
	}

	return m, nil
}

// assemble is the single construction point for every Matrix, whether built
// from caller rows or from a kernel's freshly computed buffer. It takes
// ownership of data.
func assemble(r, c int, data []float64) (Matrix, error) {
	if r <= 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	if c < 0 || len(data) != r*c {
		return Matrix{}, errors.Wrapf(ErrRaggedRows, "%d elements for %d rows of %d", len(data), r, c)
	}

	return Matrix{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows (0 for the empty matrix).
func (m Matrix) Rows() int { return m.r }

// Cols returns the number of columns. It reports 0 for the empty matrix;
// use IsEmpty to tell "no rows" apart from an r×0 matrix.
func (m Matrix) Cols() int { return m.c }

// IsEmpty reports whether m has no rows (the zero Matrix).
func (m Matrix) IsEmpty() bool { return m.r == 0 }

// At returns the element at (i, j) or ErrOutOfRange.
func (m Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, errors.Wrapf(ErrOutOfRange, "matrix.%s(%d,%d): shape %dx%d", opAt, i, j, m.r, m.c)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i as a Vector or ErrOutOfRange.
func (m Matrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.r {
		return vector.Vector{}, errors.Wrapf(ErrOutOfRange, "matrix.%s(%d): %d rows", opRow, i, m.r)
	}

	return vector.New(m.row(i)), nil
}

// row returns the backing slice of row i (capacity clipped). Read-only.
func (m Matrix) row(i int) []float64 {
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// ToRows returns the matrix as freshly allocated nested rows.
// The empty matrix yields nil.
func (m Matrix) ToRows() [][]float64 {
	if m.r == 0 {
		return nil
	}
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Equal reports exact shape and element equality (NaN never equals NaN).
func (m Matrix) Equal(o Matrix) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String formats one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j, x := range m.row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
