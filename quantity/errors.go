// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Sentinel errors for quantity operations, prefixed "quantity: ...".
//   - Re-export the dimension and registry sentinels a caller of this package
//     matches most often, so errors.Is works without extra imports.

package quantity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/registry"
)

var (
	// ErrUndefinedIdentity indicates Zero requested for an offset unit, or One
	// requested for anything but the linear dimensionless base unit.
	ErrUndefinedIdentity = errors.New("quantity: identity undefined for unit")

	// ErrNoRegistry indicates a Quantity without a registry (the zero value).
	ErrNoRegistry = errors.New("quantity: no registry")
)

var (
	// ErrDimensionMismatch aliases dimension.ErrDimensionMismatch.
	ErrDimensionMismatch = dimension.ErrDimensionMismatch

	// ErrNonIntegerRootExponent aliases dimension.ErrNonIntegerRootExponent.
	ErrNonIntegerRootExponent = dimension.ErrNonIntegerRootExponent

	// ErrUnitNotRegistered aliases registry.ErrUnitNotRegistered.
	ErrUnitNotRegistered = registry.ErrUnitNotRegistered
)

// quantityErrorf tags err with the failing operation.
func quantityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
