// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
)

// Unit is a named unit bound to exactly one dimension and an affine Rule
// relative to that dimension's base unit.
type Unit struct {
	name    string
	symbol  string
	dim     dimension.Dimension
	rule    Rule
	derived bool // formal product/quotient/power of other units
}

// New validates and returns a declared unit.
// Errors: ErrEmptyName, ErrInvalidScale, ErrInvalidOffset.
func New(name, symbol string, dim dimension.Dimension, rule Rule) (Unit, error) {
	if name == "" {
		return Unit{}, ErrEmptyName
	}
	if err := rule.Validate(); err != nil {
		return Unit{}, fmt.Errorf("unit %q: %w", name, err)
	}
	if symbol == "" {
		symbol = name
	}

	return Unit{name: name, symbol: symbol, dim: dim, rule: rule}, nil
}

// Name returns the unit name, e.g. "kilometer".
func (u Unit) Name() string { return u.name }

// Symbol returns the unit symbol, e.g. "km".
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the dimension the unit measures.
func (u Unit) Dimension() dimension.Dimension { return u.dim }

// Rule returns the affine rule relative to the dimension's base unit.
func (u Unit) Rule() Rule { return u.rule }

// Scale is shorthand for Rule().Scale.
func (u Unit) Scale() float64 { return u.rule.Scale }

// Offset is shorthand for Rule().Offset.
func (u Unit) Offset() float64 { return u.rule.Offset }

// IsLinear reports whether the unit has no offset.
func (u Unit) IsLinear() bool { return u.rule.IsLinear() }

// IsDerived reports whether the unit was composed by Product, Quotient,
// Power or Root rather than declared.
func (u Unit) IsDerived() bool { return u.derived }

// IsZero reports whether u is the zero Unit (never declared).
func (u Unit) IsZero() bool { return u.name == "" }

// ToBase converts v from u into the base unit.
func (u Unit) ToBase(v float64) float64 { return u.rule.ToBase(v) }

// FromBase converts b from the base unit into u.
func (u Unit) FromBase(b float64) float64 { return u.rule.FromBase(b) }

// Equal reports whether two units are the same declaration.
func (u Unit) Equal(o Unit) bool {
	return u.name == o.name &&
		u.symbol == o.symbol &&
		u.rule == o.rule &&
		u.derived == o.derived &&
		u.dim.Equal(o.dim)
}

// String returns the symbol.
func (u Unit) String() string { return u.symbol }
