// SPDX-License-Identifier: MIT

package vector

import "github.com/cockroachdb/errors"

// Sentinels are returned wrapped with the operation name, e.g.
// "vector.Add: lengths 2 and 3: dimension mismatch". Callers match them via
// errors.Is and must not rely on the message text.
var (
	// ErrDimensionMismatch indicates operands whose lengths or shapes are
	// incompatible for the requested operation. Package matrix re-exports
	// this exact sentinel so one errors.Is check covers both packages.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Operation tags used for error wrapping.
const (
	opAdd = "vector.Add"
	opSub = "vector.Sub"
	opDot = "vector.Dot"
	opAt  = "vector.At"
)

// lengthMismatch wraps ErrDimensionMismatch with the operand lengths.
func lengthMismatch(op string, a, b int) error {
	return errors.Wrapf(ErrDimensionMismatch, "%s: lengths %d and %d", op, a, b)
}
