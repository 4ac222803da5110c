// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// Registry is the built, read-only conversion catalog. All methods are safe
// for concurrent use; nothing is mutated after Build returns it.
type Registry struct {
	sys  dimension.System
	opts Options

	dimByName map[string]dimension.Dimension // dimension name → vector
	dimByKey  map[string]string              // vector key → dimension name

	units   map[string]unit.Unit   // unit name → unit
	symbols map[string]string      // symbol → unit name
	byDim   map[string][]unit.Unit // vector key → units in declaration order
	base    map[string]unit.Unit   // vector key → base unit

	// matrix[vector key][(from,to)] holds the stored rule pair.
	matrix map[string]map[pairKey]Conversion
	// inMatrix holds the names of units taking part in a pairwise matrix.
	inMatrix map[string]struct{}

	angle         dimension.Dimension
	dimensionless unit.Unit // zero if no dimensionless dimension was declared
}

// System returns the base-dimension system.
func (r *Registry) System() dimension.System { return r.sys }

// Epsilon returns the configured comparison tolerance.
func (r *Registry) Epsilon() float64 { return r.opts.eps }

// FusedMulAdd reports whether MulAdd may use the fused path.
func (r *Registry) FusedMulAdd() bool { return r.opts.fusedMulAdd }

// AngleDimension returns the dimension accepted by trigonometric functions.
func (r *Registry) AngleDimension() dimension.Dimension { return r.angle }

// Dimension returns the vector of a declared dimension.
// Errors: ErrUnknownDimension.
func (r *Registry) Dimension(name string) (dimension.Dimension, error) {
	d, ok := r.dimByName[name]
	if !ok {
		return dimension.Dimension{}, fmt.Errorf("Dimension(%q): %w", name, ErrUnknownDimension)
	}

	return d, nil
}

// DimensionName returns the declared name of d, if any.
func (r *Registry) DimensionName(d dimension.Dimension) (string, bool) {
	name, ok := r.dimByKey[d.Key()]

	return name, ok
}

// Dimensions returns all declared dimension names in lexical order.
func (r *Registry) Dimensions() []string {
	out := make([]string, 0, len(r.dimByName))
	for name := range r.dimByName {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Unit looks up a declared unit by name, then by symbol.
// Errors: ErrUnitNotRegistered.
func (r *Registry) Unit(nameOrSymbol string) (unit.Unit, error) {
	if u, ok := r.units[nameOrSymbol]; ok {
		return u, nil
	}
	if name, ok := r.symbols[nameOrSymbol]; ok {
		return r.units[name], nil
	}

	return unit.Unit{}, fmt.Errorf("Unit(%q): %w", nameOrSymbol, ErrUnitNotRegistered)
}

// MustUnit is Unit that panics on error. Intended for catalog constants and tests.
func (r *Registry) MustUnit(nameOrSymbol string) unit.Unit {
	u, err := r.Unit(nameOrSymbol)
	if err != nil {
		panic(err)
	}

	return u
}

// Units returns the units of a declared dimension in declaration order.
// Errors: ErrUnknownDimension.
func (r *Registry) Units(dimensionName string) ([]unit.Unit, error) {
	d, err := r.Dimension(dimensionName)
	if err != nil {
		return nil, err
	}

	return append([]unit.Unit(nil), r.byDim[d.Key()]...), nil
}

// BaseUnit returns the base unit of d.
// Errors: ErrUnknownDimension when d was never declared.
func (r *Registry) BaseUnit(d dimension.Dimension) (unit.Unit, error) {
	u, ok := r.base[d.Key()]
	if !ok {
		return unit.Unit{}, fmt.Errorf("BaseUnit(%s): %w", r.sys.Format(d), ErrUnknownDimension)
	}

	return u, nil
}

// Coherent returns the base unit of d when d was declared, otherwise the
// coherent derived unit of d (scale 1, symbol in System.Format notation).
func (r *Registry) Coherent(d dimension.Dimension) unit.Unit {
	if u, ok := r.base[d.Key()]; ok {
		return u
	}

	return unit.Coherent(d, r.sys.Format(d))
}

// Dimensionless returns the base unit of the dimensionless dimension.
// Errors: ErrUnitNotRegistered when no dimensionless dimension was declared.
func (r *Registry) Dimensionless() (unit.Unit, error) {
	if r.dimensionless.IsZero() {
		return unit.Unit{}, fmt.Errorf("Dimensionless: %w", ErrUnitNotRegistered)
	}

	return r.dimensionless, nil
}

// IsBase reports whether u is the declared base unit of its dimension, or a
// derived unit with identity rule in a coherent system.
func (r *Registry) IsBase(u unit.Unit) bool {
	if u.IsDerived() {
		return u.Rule().IsIdentity()
	}
	b, ok := r.base[u.Dimension().Key()]

	return ok && b.Equal(u)
}

// Resolve checks that u can take part in conversions: either a declared unit
// of this registry or a derived unit over this registry's system.
// Errors: ErrUnitNotRegistered.
func (r *Registry) Resolve(u unit.Unit) (unit.Unit, error) {
	if u.IsZero() {
		return unit.Unit{}, fmt.Errorf("Resolve: zero unit: %w", ErrUnitNotRegistered)
	}
	if u.IsDerived() {
		if u.Dimension().Rank() != r.sys.Rank() {
			return unit.Unit{}, fmt.Errorf("Resolve(%s): rank %d: %w", u, u.Dimension().Rank(), ErrUnitNotRegistered)
		}

		return u, nil
	}
	got, ok := r.units[u.Name()]
	if !ok || !got.Equal(u) {
		return unit.Unit{}, fmt.Errorf("Resolve(%s): %w", u, ErrUnitNotRegistered)
	}

	return got, nil
}

// Canonical maps a derived unit to the declared unit of the same dimension
// with an identical rule (m·m → m²), preferring the base unit. Dimensionless
// units map to the dimensionless base only, so mm/m never reads as mrad or ‰.
// Units with no declared equivalent are returned unchanged.
func (r *Registry) Canonical(u unit.Unit) unit.Unit {
	if !u.IsDerived() {
		return u
	}
	key := u.Dimension().Key()
	if b, ok := r.base[key]; ok && b.Rule() == u.Rule() {
		return b
	}
	if u.Dimension().IsDimensionless() {
		return u
	}
	for _, cand := range r.byDim[key] {
		if cand.Rule() == u.Rule() {
			return cand
		}
	}

	return u
}

// Conversion returns the stored rule pair converting from → to.
// Implementation:
//   - Stage 1: resolve both units (ErrUnitNotRegistered).
//   - Stage 2: require equal dimensions (ErrUnitNotRegistered wrapping
//     ErrDimensionMismatch).
//   - Stage 3: declared pairs come from the dimension matrix in O(1); pairs
//     involving a derived unit are composed directly. With WithAutoMatrix(false)
//     a declared unit outside every matrix pairs only with its base unit or a
//     derived unit of identity rule.
//
// Complexity: O(N) for the dimension comparison, O(1) lookup.
func (r *Registry) Conversion(from, to unit.Unit) (Conversion, error) {
	from, err := r.Resolve(from)
	if err != nil {
		return Conversion{}, err
	}
	to, err = r.Resolve(to)
	if err != nil {
		return Conversion{}, err
	}
	if !from.Dimension().Equal(to.Dimension()) {
		return Conversion{}, fmt.Errorf("Conversion(%s → %s): %w: %w", from, to, ErrUnitNotRegistered, ErrDimensionMismatch)
	}
	if from.IsDerived() || to.IsDerived() {
		if !r.reachable(from, to) || !r.reachable(to, from) {
			return Conversion{}, fmt.Errorf("Conversion(%s → %s): outside every matrix: %w", from, to, ErrUnitNotRegistered)
		}

		return Conversion{From: from, To: to}, nil
	}
	c, ok := r.matrix[from.Dimension().Key()][pairKey{from.Name(), to.Name()}]
	if !ok {
		return Conversion{}, fmt.Errorf("Conversion(%s → %s): no matrix holds both: %w", from, to, ErrUnitNotRegistered)
	}

	return c, nil
}

// Convert converts v from one unit into another of the same dimension.
// Errors: as Conversion.
func (r *Registry) Convert(from, to unit.Unit, v float64) (float64, error) {
	c, err := r.Conversion(from, to)
	if err != nil {
		return 0, err
	}

	return c.Apply(v), nil
}

// reachable reports whether declared unit u may pair with other when other is
// derived. Without strict matrices every pair is reachable.
func (r *Registry) reachable(u, other unit.Unit) bool {
	if r.opts.autoMatrix || u.IsDerived() || other.Rule().IsIdentity() {
		return true
	}
	if _, ok := r.inMatrix[u.Name()]; ok {
		return true
	}

	return r.IsBase(u)
}

// pairCount returns the number of stored pairwise entries.
func (r *Registry) pairCount() int {
	n := 0
	for _, t := range r.matrix {
		n += len(t)
	}

	return n
}
