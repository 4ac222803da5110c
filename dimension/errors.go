// SPDX-License-Identifier: MIT

// Package dimension: sentinel error set.
// Every message is prefixed with "dimension: ..." so it can be grepped in logs.
// Callers match with errors.Is; context is added with fmt.Errorf("ctx: %w", ErrX).

package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands whose dimensions must be equal
	// (add, sub, rem, comparison) are not, or whose ranks differ.
	ErrDimensionMismatch = errors.New("dimension: dimension mismatch")

	// ErrNonIntegerRootExponent indicates a root (or rational power) would
	// produce a fractional exponent, which a Dimension cannot hold.
	ErrNonIntegerRootExponent = errors.New("dimension: root yields non-integer exponent")

	// ErrBadRootIndex indicates a root index below 2, or a non-positive
	// denominator for a rational power.
	ErrBadRootIndex = errors.New("dimension: root index must be >= 2")

	// ErrBadRank indicates an exponent list whose length differs from the
	// number of base dimensions of the System.
	ErrBadRank = errors.New("dimension: exponent count does not match system rank")

	// ErrEmptySystem indicates a System declared without base dimensions.
	ErrEmptySystem = errors.New("dimension: system has no base dimensions")

	// ErrDuplicateBase indicates two base dimensions share a name or symbol.
	ErrDuplicateBase = errors.New("dimension: duplicate base dimension")
)

// dimensionErrorf wraps an underlying sentinel with operation context.
func dimensionErrorf(op string, a, b Dimension, err error) error {
	return fmt.Errorf("%s(%s, %s): %w", op, a, b, err)
}
