// SPDX-License-Identifier: MIT

// Package registry: sentinel error set.
// Messages are prefixed with "registry: ...". Build failures are joined with
// errors.Join so a catalog reports every bad declaration at once; callers still
// match individual sentinels with errors.Is.

package registry

import (
	"errors"

	"github.com/katalvlaran/lvunits/dimension"
)

var (
	// ErrUnitNotRegistered indicates a conversion or quantity referenced a unit
	// the registry does not know, or two units whose dimensions differ.
	ErrUnitNotRegistered = errors.New("registry: unit not registered")

	// ErrFrozen indicates a declaration arrived after Build.
	ErrFrozen = errors.New("registry: builder already built")

	// ErrUnknownDimension indicates a unit or option named an undeclared dimension.
	ErrUnknownDimension = errors.New("registry: dimension not declared")

	// ErrDuplicateDimension indicates two dimensions share a name or a vector.
	ErrDuplicateDimension = errors.New("registry: duplicate dimension")

	// ErrDuplicateUnit indicates two units share a name or a symbol.
	ErrDuplicateUnit = errors.New("registry: duplicate unit")

	// ErrMissingBase indicates a dimension without a base unit.
	ErrMissingBase = errors.New("registry: dimension has no base unit")

	// ErrMultipleBase indicates a dimension with more than one base unit.
	ErrMultipleBase = errors.New("registry: dimension has more than one base unit")

	// ErrInvalidBase indicates a base unit whose rule is not scale 1, offset 0.
	ErrInvalidBase = errors.New("registry: base unit must have scale 1 and offset 0")

	// ErrMatrixMismatch indicates a matrix declaration whose members do not
	// share the dimension of its base.
	ErrMatrixMismatch = errors.New("registry: matrix member outside base dimension")

	// ErrInvalidDeclaration indicates a declaration with an empty name.
	ErrInvalidDeclaration = errors.New("registry: invalid declaration")
)

// ErrDimensionMismatch aliases dimension.ErrDimensionMismatch so callers of
// this package can match it without importing dimension.
var ErrDimensionMismatch = dimension.ErrDimensionMismatch
