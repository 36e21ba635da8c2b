// SPDX-License-Identifier: MIT

// Package matrix provides an immutable, dense, rectangular real matrix and
// the row-parallel kernels defined on it.
//
// The matrix package provides:
//
//   - New/Zeros/Identity constructors that enforce rectangularity and reject
//     matrices with no rows (ErrRaggedRows, ErrEmptyMatrix).
//   - Element-wise Add, Sub and ScalarMul.
//   - Mul (matrix × matrix) and MulVector (matrix × vector.Vector).
//   - Transpose, Equal and AllClose helpers.
//
// Every operation validates its operands before doing any work, allocates a
// fresh result and routes it through the same validated constructor path as
// caller input. Operands are never mutated and results never alias them.
//
// Row-producing kernels split output rows into contiguous chunks and compute
// them on separate goroutines, joining before the result is assembled. Each
// output row depends only on immutable inputs, so there are no locks and the
// row order of the result always matches the input order. Small workloads
// stay on the calling goroutine; see WithWorkers and WithMinParallelWork.
//
// Errors are sentinels wrapped with the operation name; match them with
// errors.Is. ErrDimensionMismatch is the same value as
// vector.ErrDimensionMismatch.
package matrix
