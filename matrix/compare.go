// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidTolerance is returned by AllClose for NaN or infinite tolerances.
var ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Equal infinities compare close; NaN is never close to anything.
// Negative tolerances are treated as their absolute value.
//
// Errors: ErrInvalidTolerance, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx, av := range a.data {
		bv := b.data[idx]
		if av == bv {
			continue // covers matching infinities
		}
		if !isFinite(av) || !isFinite(bv) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
