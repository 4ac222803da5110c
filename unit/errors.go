// SPDX-License-Identifier: MIT

package unit

import "errors"

var (
	// ErrInvalidScale indicates a zero, NaN or infinite scale.
	ErrInvalidScale = errors.New("unit: scale must be finite and non-zero")

	// ErrInvalidOffset indicates a NaN or infinite offset.
	ErrInvalidOffset = errors.New("unit: offset must be finite")

	// ErrEmptyName indicates a unit declared without a name.
	ErrEmptyName = errors.New("unit: name is empty")

	// ErrNonLinearUnit indicates an offset unit was used where only linear
	// units compose (products, quotients, powers, roots).
	ErrNonLinearUnit = errors.New("unit: operation requires a linear unit")
)
