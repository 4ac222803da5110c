// SPDX-License-Identifier: MIT

// Package registry: declaration types consumed by the Builder and the stored
// conversion pair returned by lookups.

package registry

import "github.com/katalvlaran/lvunits/unit"

// DimensionDecl declares a named dimension. len(Exponents) must equal the
// rank of the builder's System.
type DimensionDecl struct {
	Name      string
	Exponents []int
}

// UnitDecl declares a unit bound to one dimension:
// valueInBase = value*Scale + Offset. Offset defaults to 0. A base unit
// (Base=true) may leave Scale at 0, which is read as 1.
type UnitDecl struct {
	Name      string
	Symbol    string
	Dimension string
	Scale     float64
	Offset    float64
	Base      bool
}

// MatrixDecl names a set of units sharing the dimension of Base for which
// every pairwise conversion is derived.
type MatrixDecl struct {
	Base  string
	Units []string
}

// pairKey identifies an ordered (from, to) pair inside one dimension matrix.
type pairKey struct {
	from string
	to   string
}

// Conversion is the stored pair of rules converting From into To through
// the shared base unit.
type Conversion struct {
	From unit.Unit
	To   unit.Unit
}

// Apply evaluates fromBase_To(toBase_From(v)). The two affine steps are kept
// separate so the result matches ((v*sA + oA) - oB) / sB exactly.
func (c Conversion) Apply(v float64) float64 {
	return c.To.Rule().FromBase(c.From.Rule().ToBase(v))
}

// Affine collapses the conversion into a single rule, v*Scale + Offset.
// Useful for display; Apply is the exact path.
func (c Conversion) Affine() unit.Rule {
	from, to := c.From.Rule(), c.To.Rule()

	return unit.Rule{
		Scale:  from.Scale / to.Scale,
		Offset: (from.Offset - to.Offset) / to.Scale,
	}
}
