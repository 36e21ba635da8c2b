// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Vector is an immutable ordered sequence of float64 coordinates.
// The zero value is the empty vector.
type Vector struct {
	data []float64 // owned; never exposed without copying
}

// New returns a Vector holding a copy of data. No validation is performed:
// any finite or non-finite values and any length (including zero) are accepted.
// Complexity: O(n).
func New(data []float64) Vector {
	if len(data) == 0 {
		return Vector{}
	}
	owned := make([]float64, len(data))
	copy(owned, data)

	return Vector{data: owned}
}

// Zeros returns the additive identity of length n (n < 0 is treated as 0).
func Zeros(n int) Vector {
	if n <= 0 {
		return Vector{}
	}

	return Vector{data: make([]float64, n)}
}

// wrap adopts buf without copying. Only kernels that have just allocated buf
// may call it.
func wrap(buf []float64) Vector { return Vector{data: buf} }

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v.data) }

// At returns coordinate i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, errors.Wrapf(ErrOutOfRange, "%s(%d): len %d", opAt, i, len(v.data))
	}

	return v.data[i], nil
}

// Slice returns a fresh copy of the coordinates. The result is never nil,
// so an empty vector round-trips as an empty (not nil) slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports exact element-wise equality. NaN is never equal to anything,
// following IEEE comparison rules.
func (v Vector) Equal(w Vector) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String formats the vector as "[x0, x1, ...]" using %g.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
