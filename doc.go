// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra kernel over float64.
//
// It exposes ten pure operations on plain Go slices, so any host (a CLI, an
// RPC handler, a language binding) can call it without knowing the entity
// types underneath:
//
//	AddVectors, SubVectors, ScalarMulVector, DotProduct, NormVector
//	AddMatrices, SubMatrices, ScalarMulMatrix, MulMatrices, MulMatrixVector
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ — immutable Vector and its sequential kernels
//	matrix/ — immutable rectangular Matrix and its row-parallel kernels
//
// Every precondition failure is returned as an error wrapping one of
// ErrDimensionMismatch, ErrRaggedRows or ErrEmptyMatrix; nothing panics on
// malformed input. Results are freshly allocated and never alias arguments.
//
// Quick example:
//
//	c, err := linalg.MulMatrices(
//		[][]float64{{1, 2}, {3, 4}},
//		[][]float64{{2, 0}, {1, 2}},
//	)
//	// c == [][]float64{{4, 4}, {10, 8}}
package linalg
