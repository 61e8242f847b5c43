// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped across
// logs; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidWeight indicates a NaN or ±Inf weight.
	ErrInvalidWeight = errors.New("matrix: invalid weight")
)

// indexErrorf wraps ErrOutOfRange with method context.
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
