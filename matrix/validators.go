// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the shape checks every kernel runs before
//     allocating or computing anything.
//   - Return sentinels wrapped with the failing dimension; kernels add the
//     operation tag via matrixErrorf.
//
// All checks are O(1) except validateRows, which is O(r).

package matrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg/vector"
)

// validateRows enforces rectangularity on caller-supplied nested rows.
func validateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return ErrEmptyMatrix
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return errors.Wrapf(ErrRaggedRows, "row %d has length %d, row 0 has %d", i, len(rows[i]), c)
		}
	}

	return nil
}

// validateNonEmpty rejects the zero Matrix before its column count is read.
func validateNonEmpty(ms ...Matrix) error {
	for _, m := range ms {
		if m.IsEmpty() {
			return ErrEmptyMatrix
		}
	}

	return nil
}

// validateSameShape requires identical row and column counts.
func validateSameShape(a, b Matrix) error {
	if err := validateNonEmpty(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return errors.Wrapf(ErrDimensionMismatch, "rows %d and %d", a.r, b.r)
	}
	if a.c != b.c {
		return errors.Wrapf(ErrDimensionMismatch, "columns %d and %d", a.c, b.c)
	}

	return nil
}

// validateMulCompatible requires a.Cols == b.Rows.
func validateMulCompatible(a, b Matrix) error {
	if err := validateNonEmpty(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d times %dx%d", a.r, a.c, b.r, b.c)
	}

	return nil
}

// validateVecLen requires a.Cols == v.Len.
func validateVecLen(a Matrix, v vector.Vector) error {
	if err := validateNonEmpty(a); err != nil {
		return err
	}
	if a.c != v.Len() {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d times vector of length %d", a.r, a.c, v.Len())
	}

	return nil
}
