// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vector and its kernels.
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	data := []float64{1, 2, 3}
	v := vector.New(data)
	data[0] = 42

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	out := v.Slice()
	out[1] = -1
	x, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, x)
}

func TestAtOutOfRange(t *testing.T) {
	v := vector.New([]float64{1, 2})
	_, err := v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestAddSub(t *testing.T) {
	a := vector.New([]float64{1, 2, 3})
	b := vector.New([]float64{4, 5, 6})

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum.Slice())

	diff, err := vector.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, diff.Slice())
}

func TestScalarMul(t *testing.T) {
	got := vector.ScalarMul(vector.New([]float64{1, 2, 3}), 2)
	require.Equal(t, []float64{2, 4, 6}, got.Slice())

	require.Equal(t, 0, vector.ScalarMul(vector.Vector{}, 5).Len())
}

func TestDotNorm(t *testing.T) {
	d, err := vector.Dot(vector.New([]float64{1, 2, 3}), vector.New([]float64{4, 5, 6}))
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	require.Equal(t, 5.0, vector.Norm(vector.New([]float64{3, 4})))
	require.Equal(t, 0.0, vector.Norm(vector.New([]float64{0, 0, 0})))
}

// TestEmptyVectors covers the defined results for zero-length operands.
func TestEmptyVectors(t *testing.T) {
	var e vector.Vector

	require.Equal(t, 0.0, vector.Norm(e))

	sum, err := vector.Add(e, vector.New(nil))
	require.NoError(t, err)
	require.Equal(t, 0, sum.Len())
	require.Equal(t, []float64{}, sum.Slice())

	diff, err := vector.Sub(e, e)
	require.NoError(t, err)
	require.Equal(t, 0, diff.Len())

	d, err := vector.Dot(e, e)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestDimensionMismatch(t *testing.T) {
	a := vector.New([]float64{1, 2})
	b := vector.New([]float64{1, 2, 3})

	_, err := vector.Add(a, b)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Sub(b, a)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Dot(a, b)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Add(vector.Vector{}, a)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestOperandsNotMutated verifies results are fresh allocations.
func TestOperandsNotMutated(t *testing.T) {
	a := vector.New([]float64{1, 2})
	b := vector.New([]float64{3, 4})

	_, err := vector.Add(a, b)
	require.NoError(t, err)
	_ = vector.ScalarMul(a, 10)

	require.Equal(t, []float64{1, 2}, a.Slice())
	require.Equal(t, []float64{3, 4}, b.Slice())
}

func TestNonFinitePropagates(t *testing.T) {
	require.True(t, math.IsNaN(vector.Norm(vector.New([]float64{math.NaN(), 1}))))
	require.True(t, math.IsInf(vector.Norm(vector.New([]float64{math.Inf(-1)})), 1))

	d, err := vector.Dot(vector.New([]float64{0}), vector.New([]float64{math.Inf(1)}))
	require.NoError(t, err)
	require.True(t, math.IsNaN(d))
}

// TestProperties checks commutativity, identities, inverse and the dot/norm relation.
func TestProperties(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-12, 1e-12)
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 3, 17, 256} {
		xs, ys := make([]float64, n), make([]float64, n)
		for i := range xs {
			xs[i], ys[i] = 2*rng.Float64()-1, 2*rng.Float64()-1
		}
		a, b := vector.New(xs), vector.New(ys)

		ab, err := vector.Add(a, b)
		require.NoError(t, err)
		ba, err := vector.Add(b, a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "n=%d: a+b == b+a", n)

		require.True(t, vector.ScalarMul(a, 1).Equal(a), "n=%d: a*1 == a", n)

		plus, err := vector.Add(a, vector.Zeros(n))
		require.NoError(t, err)
		require.True(t, plus.Equal(a), "n=%d: a+0 == a", n)

		back, err := vector.Sub(ab, b)
		require.NoError(t, err)
		if diff := cmp.Diff(a.Slice(), back.Slice(), approx); diff != "" {
			t.Fatalf("n=%d: (a+b)-b != a (-want +got):\n%s", n, diff)
		}

		dd, err := vector.Dot(a, a)
		require.NoError(t, err)
		norm := vector.Norm(a)
		require.InDelta(t, dd, norm*norm, 1e-12*(1+dd), "n=%d: dot(v,v) == norm(v)^2", n)
	}
}

func TestEqualAndString(t *testing.T) {
	a := vector.New([]float64{1, 2.5})
	require.True(t, a.Equal(vector.New([]float64{1, 2.5})))
	require.False(t, a.Equal(vector.New([]float64{1})))
	require.False(t, vector.New([]float64{math.NaN()}).Equal(vector.New([]float64{math.NaN()})))
	require.Equal(t, "[1, 2.5]", a.String())
	require.Equal(t, "[]", vector.Vector{}.String())
}

// TestContentsFixedAfterConstruction mutates every slice the exported API
// hands in or out and checks the vectors involved never change.
func TestContentsFixedAfterConstruction(t *testing.T) {
	src := []float64{1, 2, 3}
	v := vector.New(src)
	src[0] = 99

	out := v.Slice()
	out[1] = -7

	sum, err := vector.Add(v, v)
	require.NoError(t, err)
	sumOut := sum.Slice()
	sumOut[2] = 0

	scaled := vector.ScalarMul(v, 1)
	scaledOut := scaled.Slice()
	scaledOut[0] = 42

	require.Equal(t, "[1, 2, 3]", v.String())
	require.Equal(t, "[2, 4, 6]", sum.String())
	require.Equal(t, "[1, 2, 3]", scaled.String())
}
