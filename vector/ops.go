// SPDX-License-Identifier: MIT

package vector

import "math"

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub so both run one validation and one allocation.
//
// Errors: ErrDimensionMismatch when a.Len() != b.Len().
// Complexity: Time O(n), Space O(n).
func addSub(a, b Vector, sign float64, op string) (Vector, error) {
	if len(a.data) != len(b.data) {
		return Vector{}, lengthMismatch(op, len(a.data), len(b.data))
	}
	if len(a.data) == 0 {
		return Vector{}, nil
	}

	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] + sign*b.data[i]
	}

	return wrap(out), nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrDimensionMismatch when lengths differ.
func Add(a, b Vector) (Vector, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a - b.
// Errors: ErrDimensionMismatch when lengths differ.
func Sub(a, b Vector) (Vector, error) { return addSub(a, b, -1, opSub) }

// ScalarMul returns k*v. It always succeeds and preserves length.
func ScalarMul(v Vector, k float64) Vector {
	if len(v.data) == 0 {
		return Vector{}
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * k
	}

	return wrap(out)
}

// Dot returns Σ a[i]*b[i], accumulated left to right.
//
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: Time O(n), Space O(1).
func Dot(a, b Vector) (float64, error) {
	if len(a.data) != len(b.data) {
		return 0, lengthMismatch(opDot, len(a.data), len(b.data))
	}

	return dot(a.data, b.data), nil
}

// Norm returns the Euclidean length sqrt(Σ x²). It is 0 for the empty vector
// and non-negative otherwise; NaN inputs propagate.
func Norm(v Vector) float64 {
	return math.Sqrt(dot(v.data, v.data))
}

// dot assumes len(x) == len(y).
func dot(x, y []float64) float64 {
	acc := 0.0
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc
}

// DotSlices is the unchecked row kernel shared with package matrix: it
// returns Σ x[i]*y[i] for i < len(x). Callers must guarantee len(y) >= len(x).
// It exists so matrix-vector products accumulate in the same order as Dot.
func DotSlices(x, y []float64) float64 { return dot(x, y[:len(x)]) }
