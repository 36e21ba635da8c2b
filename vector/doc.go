// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-length real vector and the
// sequential kernels defined on it: Add, Sub, ScalarMul, Dot and Norm.
//
// Every operation is a pure function of its inputs. Results are freshly
// allocated and never alias an operand. Length mismatches are reported as
// ErrDimensionMismatch (match with errors.Is); nothing in this package panics
// on caller data.
//
// Vectors are expected to be short relative to matrix row counts, so all
// kernels run on the calling goroutine. Row-parallel work lives in package
// matrix.
//
// Empty vectors are legal: Norm of an empty vector is 0, and Add/Sub/Dot of
// two empty vectors return an empty vector (or 0) without error.
package vector
