// SPDX-License-Identifier: MIT
// Package linalg — public API facades.
//
// Purpose:
//   - Thin entry points that convert plain slices into vector.Vector and
//     matrix.Matrix, call the canonical kernel, and convert back.
//   - No logic duplication: validation and arithmetic live in the kernels.

package linalg

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Error sentinels, re-exported so callers need only this package.
var (
	ErrDimensionMismatch = vector.ErrDimensionMismatch
	ErrRaggedRows        = matrix.ErrRaggedRows
	ErrEmptyMatrix       = matrix.ErrEmptyMatrix
)

// Operation names used to tag facade errors.
const (
	opAddVectors      = "add_vectors"
	opSubVectors      = "sub_vectors"
	opDotProduct      = "dot_product"
	opAddMatrices     = "add_matrices"
	opSubMatrices     = "sub_matrices"
	opScalarMulMatrix = "scalar_mul_matrix"
	opMulMatrices     = "mul_matrices"
	opMulMatrixVector = "mul_matrix_vector"
)

// ---------- Vectors (sequential) ----------

// AddVectors returns v1 + v2 element-wise.
func AddVectors(v1, v2 []float64) ([]float64, error) {
	out, err := vector.Add(vector.New(v1), vector.New(v2))
	if err != nil {
		return nil, errors.Wrap(err, opAddVectors)
	}

	return out.Slice(), nil
}

// SubVectors returns v1 - v2 element-wise.
func SubVectors(v1, v2 []float64) ([]float64, error) {
	out, err := vector.Sub(vector.New(v1), vector.New(v2))
	if err != nil {
		return nil, errors.Wrap(err, opSubVectors)
	}

	return out.Slice(), nil
}

// ScalarMulVector returns k*v. It cannot fail.
func ScalarMulVector(v []float64, k float64) []float64 {
	return vector.ScalarMul(vector.New(v), k).Slice()
}

// DotProduct returns Σ v1[i]*v2[i].
func DotProduct(v1, v2 []float64) (float64, error) {
	d, err := vector.Dot(vector.New(v1), vector.New(v2))
	if err != nil {
		return 0, errors.Wrap(err, opDotProduct)
	}

	return d, nil
}

// NormVector returns the Euclidean norm of v (0 for an empty v).
func NormVector(v []float64) float64 { return vector.Norm(vector.New(v)) }

// ---------- Matrices (row-parallel) ----------

// binaryMatrix builds both operands and applies op.
func binaryMatrix(tag string, m1, m2 [][]float64, opts []matrix.Option,
	op func(a, b matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error),
) ([][]float64, error) {
	a, err := matrix.New(m1)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: m1", tag)
	}
	b, err := matrix.New(m2)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: m2", tag)
	}
	out, err := op(a, b, opts...)
	if err != nil {
		return nil, errors.Wrap(err, tag)
	}

	return out.ToRows(), nil
}

// AddMatrices returns m1 + m2 element-wise.
func AddMatrices(m1, m2 [][]float64, opts ...matrix.Option) ([][]float64, error) {
	return binaryMatrix(opAddMatrices, m1, m2, opts, matrix.Add)
}

// SubMatrices returns m1 - m2 element-wise.
func SubMatrices(m1, m2 [][]float64, opts ...matrix.Option) ([][]float64, error) {
	return binaryMatrix(opSubMatrices, m1, m2, opts, matrix.Sub)
}

// MulMatrices returns the matrix product m1 × m2.
func MulMatrices(m1, m2 [][]float64, opts ...matrix.Option) ([][]float64, error) {
	return binaryMatrix(opMulMatrices, m1, m2, opts, matrix.Mul)
}

// ScalarMulMatrix returns k*m.
func ScalarMulMatrix(m [][]float64, k float64, opts ...matrix.Option) ([][]float64, error) {
	a, err := matrix.New(m)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: m", opScalarMulMatrix)
	}
	out, err := matrix.ScalarMul(a, k, opts...)
	if err != nil {
		return nil, errors.Wrap(err, opScalarMulMatrix)
	}

	return out.ToRows(), nil
}

// MulMatrixVector returns m·v, a vector of length len(m).
func MulMatrixVector(m [][]float64, v []float64, opts ...matrix.Option) ([]float64, error) {
	a, err := matrix.New(m)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: m", opMulMatrixVector)
	}
	out, err := matrix.MulVector(a, vector.New(v), opts...)
	if err != nil {
		return nil, errors.Wrap(err, opMulMatrixVector)
	}

	return out.Slice(), nil
}
