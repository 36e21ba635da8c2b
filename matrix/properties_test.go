// SPDX-License-Identifier: MIT
// Package matrix_test: algebraic properties over random operands.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// shapes exercised by the property tests; includes one large enough to
// cross DefaultMinParallelWork for Mul.
var shapes = [][2]int{{1, 1}, {2, 3}, {7, 5}, {70, 70}}

func TestAddCommutative(t *testing.T) {
	for k, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			a := mustRand(t, int64(100+k), sh[0], sh[1])
			b := mustRand(t, int64(200+k), sh[0], sh[1])

			ab, err := matrix.Add(a, b)
			require.NoError(t, err)
			ba, err := matrix.Add(b, a)
			require.NoError(t, err)
			require.True(t, ab.Equal(ba))
		})
	}
}

func TestIdentities(t *testing.T) {
	for k, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			a := mustRand(t, int64(300+k), sh[0], sh[1])

			one, err := matrix.ScalarMul(a, 1.0)
			require.NoError(t, err)
			require.True(t, one.Equal(a), "A*1 == A")

			zero, err := matrix.Zeros(sh[0], sh[1])
			require.NoError(t, err)
			plus, err := matrix.Add(a, zero)
			require.NoError(t, err)
			require.True(t, plus.Equal(a), "A+0 == A")

			id, err := matrix.Identity(sh[1])
			require.NoError(t, err)
			prod, err := matrix.Mul(a, id)
			require.NoError(t, err)
			require.True(t, prod.Equal(a), "A*I == A")
		})
	}
}

func TestAddSubInverse(t *testing.T) {
	for k, sh := range shapes {
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			a := mustRand(t, int64(400+k), sh[0], sh[1])
			b := mustRand(t, int64(500+k), sh[0], sh[1])

			sum, err := matrix.Add(a, b)
			require.NoError(t, err)
			back, err := matrix.Sub(sum, b)
			require.NoError(t, err)
			requireApprox(t, a, back)
		})
	}
}

func TestMulAssociative(t *testing.T) {
	dims := [][4]int{{1, 1, 1, 1}, {2, 3, 4, 5}, {9, 4, 7, 3}, {64, 70, 66, 65}}
	for k, d := range dims {
		t.Run(fmt.Sprintf("%dx%dx%dx%d", d[0], d[1], d[2], d[3]), func(t *testing.T) {
			a := mustRand(t, int64(600+k), d[0], d[1])
			b := mustRand(t, int64(700+k), d[1], d[2])
			c := mustRand(t, int64(800+k), d[2], d[3])

			ab, err := matrix.Mul(a, b)
			require.NoError(t, err)
			left, err := matrix.Mul(ab, c)
			require.NoError(t, err)

			bc, err := matrix.Mul(b, c)
			require.NoError(t, err)
			right, err := matrix.Mul(a, bc)
			require.NoError(t, err)

			ok, err := matrix.AllClose(left, right, 1e-9, 1e-9)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

// TestTransposeOfProduct checks (AB)ᵀ == BᵀAᵀ.
func TestTransposeOfProduct(t *testing.T) {
	a := mustRand(t, 901, 5, 8)
	b := mustRand(t, 902, 8, 3)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abT, err := matrix.Transpose(ab)
	require.NoError(t, err)

	aT, err := matrix.Transpose(a)
	require.NoError(t, err)
	bT, err := matrix.Transpose(b)
	require.NoError(t, err)
	bTaT, err := matrix.Mul(bT, aT)
	require.NoError(t, err)

	requireApprox(t, abT, bTaT)
}
