// SPDX-License-Identifier: MIT
// Package matrix: row-parallel kernels.
//
// Purpose:
//   - Add, Sub, ScalarMul, Mul, MulVector and Transpose over Matrix values.
//   - Every kernel validates first, then fills a fresh buffer row by row via
//     dispatchRows, then assembles the result through the checked constructor.
//
// Determinism:
//   - Each output element is computed by exactly one goroutine with a fixed
//     inner loop order, so results do not depend on the worker count.
//   - No zero-skipping: 0*Inf and 0*NaN must still produce NaN.

package matrix

import (
	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/katalvlaran/linalg/vector"
)

// dispatchRows allocates an r×c buffer, runs fill for every output row
// across the workers chosen for workPerRow multiply-adds per row, waits for
// all rows (fork-join barrier) and assembles the result in row order.
// fill must write only dst, which is row i of the result.
func dispatchRows(op string, r, c, workPerRow int, o Options, fill func(i int, dst []float64)) (Matrix, error) {
	data := make([]float64, r*c)
	workers := o.workersFor(r, r*workPerRow)

	err := parallel.For(r, workers, func(start, end int) error {
		for i := start; i < end; i++ {
			lo, hi := i*c, (i+1)*c
			fill(i, data[lo:hi:hi])
		}
		return nil
	})
	if err != nil {
		return Matrix{}, matrixErrorf(op, err)
	}

	res, err := assemble(r, c, data)
	if err != nil {
		return Matrix{}, matrixErrorf(op, err)
	}

	return res, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub so both use one validation and one allocation.
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, op string, opts []Option) (Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return Matrix{}, matrixErrorf(op, err)
	}

	return dispatchRows(op, a.r, a.c, a.c, gatherOptions(opts...), func(i int, dst []float64) {
		ar, br := a.row(i), b.row(i)
		for j := range dst {
			dst[j] = ar[j] + sign*br[j]
		}
	})
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrEmptyMatrix (either operand is the zero Matrix).
//   - ErrDimensionMismatch (row or column counts differ).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, +1, opAdd, opts) }

// Sub computes the element-wise difference C = A - B.
// Errors are as for Add.
func Sub(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, -1, opSub, opts) }

// ScalarMul returns k*A. The only failure is ErrEmptyMatrix.
func ScalarMul(a Matrix, k float64, opts ...Option) (Matrix, error) {
	if err := validateNonEmpty(a); err != nil {
		return Matrix{}, matrixErrorf(opScalarMul, err)
	}

	return dispatchRows(opScalarMul, a.r, a.c, a.c, gatherOptions(opts...), func(i int, dst []float64) {
		for j, x := range a.row(i) {
			dst[j] = x * k
		}
	})
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate both operands non-empty and A.Cols == B.Rows.
//   - Stage 2: each worker owns whole output rows; row i sweeps all of B in
//     i→k→j order, so C[i,j] accumulates A[i,k]*B[k,j] for k = 0..n-1, the
//     same order as a left-to-right dot product of row i with column j.
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return Matrix{}, matrixErrorf(opMul, err)
	}

	n, c := a.c, b.c

	return dispatchRows(opMul, a.r, c, n*c, gatherOptions(opts...), func(i int, dst []float64) {
		// dst starts zeroed by dispatchRows.
		for k, av := range a.row(i) {
			bk := b.row(k)
			for j := 0; j < c; j++ {
				dst[j] += av * bk[j]
			}
		}
	})
}

// MulVector computes y = A·v, where y[i] is the dot product of row i with v.
// The result has length A.Rows().
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch (A.Cols != v.Len).
// Complexity: Time O(r*c), Space O(r+c).
func MulVector(a Matrix, v vector.Vector, opts ...Option) (vector.Vector, error) {
	if err := validateVecLen(a, v); err != nil {
		return vector.Vector{}, matrixErrorf(opMulVector, err)
	}

	o := gatherOptions(opts...)
	x := v.Slice()
	y := make([]float64, a.r)

	err := parallel.For(a.r, o.workersFor(a.r, a.r*a.c), func(start, end int) error {
		for i := start; i < end; i++ {
			y[i] = vector.DotSlices(a.row(i), x)
		}
		return nil
	})
	if err != nil {
		return vector.Vector{}, matrixErrorf(opMulVector, err)
	}

	return vector.New(y), nil
}

// Transpose returns Aᵀ. Transposing an r×0 matrix yields a matrix with no
// rows and therefore fails with ErrEmptyMatrix.
func Transpose(a Matrix, opts ...Option) (Matrix, error) {
	if err := validateNonEmpty(a); err != nil {
		return Matrix{}, matrixErrorf(opTranspose, err)
	}

	return dispatchRows(opTranspose, a.c, a.r, a.r, gatherOptions(opts...), func(j int, dst []float64) {
		for i := range dst {
			dst[i] = a.data[i*a.c+j]
		}
	})
}
