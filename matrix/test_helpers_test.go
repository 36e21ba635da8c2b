// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for kernel and property tests.
//   - Keep random data finite so tolerance comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// approx compares float slices within a relative/absolute tolerance.
var approx = cmpopts.EquateApprox(1e-12, 1e-12)

// mustNew builds a Matrix or fails the test.
func mustNew(tb testing.TB, rows [][]float64) matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)

	return m
}

// randRows returns r×c values uniformly drawn from [-1, 1).
func randRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return rows
}

// newRng returns a deterministic source for fixtures.
func newRng(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// mustRand builds a random r×c Matrix from a fixed seed.
func mustRand(tb testing.TB, seed int64, r, c int) matrix.Matrix {
	tb.Helper()

	return mustNew(tb, randRows(newRng(seed), r, c))
}

// requireApprox fails unless a and b have the same shape and close elements.
func requireApprox(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want.ToRows(), got.ToRows(), approx); diff != "" {
		t.Fatalf("matrices differ (-want +got):\n%s", diff)
	}
}
