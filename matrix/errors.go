// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag and tests
// check them via errors.Is. No kernel panics on caller-supplied data; panics
// are reserved for nonsensical Option values (programmer error).

package matrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg/vector"
)

var (
	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul where a.Cols != b.Rows, MulVector where
	// a.Cols != v.Len. It aliases vector.ErrDimensionMismatch.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrRaggedRows is returned when a row's length differs from the first row's.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrEmptyMatrix is returned when a matrix has no rows, so its column
	// count is undefined. The zero Matrix value is empty.
	ErrEmptyMatrix = errors.New("matrix: matrix has no rows")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Operation name constants for uniform error wrapping.
const (
	opNew       = "New"
	opZeros     = "Zeros"
	opIdentity  = "Identity"
	opAdd       = "Add"
	opSub       = "Sub"
	opScalarMul = "ScalarMul"
	opMul       = "Mul"
	opMulVector = "MulVector"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
	opAt        = "At"
	opRow       = "Row"
)

// matrixErrorf tags err with the operation name, preserving it for errors.Is.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return errors.Wrapf(err, "matrix.%s", tag)
}
