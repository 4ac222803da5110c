// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"math"
)

// Rule is the affine transform from a unit to the base unit of its dimension.
// The base unit itself carries Identity.
type Rule struct {
	Scale  float64 // non-zero, finite
	Offset float64 // finite; 0 for linear units
}

// Identity is the rule of every base unit.
var Identity = Rule{Scale: 1, Offset: 0}

// Linear returns a rule with the given scale and no offset.
func Linear(scale float64) Rule { return Rule{Scale: scale} }

// Affine returns a rule with the given scale and offset.
func Affine(scale, offset float64) Rule { return Rule{Scale: scale, Offset: offset} }

// ToBase converts v from this unit into the base unit: v*Scale + Offset.
func (r Rule) ToBase(v float64) float64 { return v*r.Scale + r.Offset }

// FromBase converts b from the base unit into this unit: (b - Offset) / Scale.
func (r Rule) FromBase(b float64) float64 { return (b - r.Offset) / r.Scale }

// IsLinear reports whether the rule has no offset.
func (r Rule) IsLinear() bool { return r.Offset == 0 }

// IsIdentity reports whether the rule is exactly scale 1, offset 0.
func (r Rule) IsIdentity() bool { return r.Scale == 1 && r.Offset == 0 }

// Validate checks the numeric policy: finite non-zero scale, finite offset.
func (r Rule) Validate() error {
	if r.Scale == 0 || math.IsNaN(r.Scale) || math.IsInf(r.Scale, 0) {
		return fmt.Errorf("Rule{%g, %g}: %w", r.Scale, r.Offset, ErrInvalidScale)
	}
	if math.IsNaN(r.Offset) || math.IsInf(r.Offset, 0) {
		return fmt.Errorf("Rule{%g, %g}: %w", r.Scale, r.Offset, ErrInvalidOffset)
	}

	return nil
}
