// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Define Quantity[V], its constructors and its unit conversions.
//   - Host the private helpers every operation shares: registry presence,
//     dimension checks, alignment of a second operand, offset normalisation.
//
// Design:
//   - Quantity is a small value type; operations never mutate the receiver.
//   - All conversions go through the registry, never through ad hoc factors.

package quantity

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/unit"
)

// Number is the set of value types a Quantity can carry.
type Number interface {
	~float32 | ~float64
}

// Quantity is a value expressed in a unit of a built registry.
// The zero Quantity has no registry; every operation on it fails with ErrNoRegistry.
type Quantity[V Number] struct {
	value V
	unit  unit.Unit
	reg   *registry.Registry
}

// New returns v expressed in u (makeQuantity).
// Errors: ErrNoRegistry when reg is nil; ErrUnitNotRegistered when reg cannot
// resolve u.
func New[V Number](reg *registry.Registry, v V, u unit.Unit) (Quantity[V], error) {
	if reg == nil {
		return Quantity[V]{}, quantityErrorf("New", ErrNoRegistry)
	}
	resolved, err := reg.Resolve(u)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("New", err)
	}

	return Quantity[V]{value: v, unit: resolved, reg: reg}, nil
}

// MustNew is New that panics on error.
func MustNew[V Number](reg *registry.Registry, v V, u unit.Unit) Quantity[V] {
	q, err := New(reg, v, u)
	if err != nil {
		panic(err)
	}

	return q
}

// FromBase returns the quantity whose value in the base unit of u's dimension
// is base, expressed in u.
// Errors: as New.
func FromBase[V Number](reg *registry.Registry, base V, u unit.Unit) (Quantity[V], error) {
	q, err := New(reg, base, u)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("FromBase", err)
	}
	q.value = V(q.unit.FromBase(float64(base)))

	return q, nil
}

// Value returns the numeric value in the quantity's own unit.
func (q Quantity[V]) Value() V { return q.value }

// Unit returns the quantity's unit.
func (q Quantity[V]) Unit() unit.Unit { return q.unit }

// Dimension returns the dimension of the quantity's unit.
func (q Quantity[V]) Dimension() dimension.Dimension { return q.unit.Dimension() }

// Registry returns the registry the quantity was created against.
func (q Quantity[V]) Registry() *registry.Registry { return q.reg }

// BaseValue returns the value expressed in the base unit of the dimension.
func (q Quantity[V]) BaseValue() V { return V(q.unit.ToBase(float64(q.value))) }

// ValueAs returns the value converted into u.
// Errors: ErrUnitNotRegistered (also wrapping ErrDimensionMismatch when the
// dimensions differ), ErrNoRegistry.
func (q Quantity[V]) ValueAs(u unit.Unit) (V, error) {
	if err := q.valid("ValueAs"); err != nil {
		return 0, err
	}
	v, err := q.reg.Convert(q.unit, u, float64(q.value))
	if err != nil {
		return 0, quantityErrorf("ValueAs", err)
	}

	return V(v), nil
}

// In returns the same quantity expressed in u.
// Errors: as ValueAs.
func (q Quantity[V]) In(u unit.Unit) (Quantity[V], error) {
	v, err := q.ValueAs(u)
	if err != nil {
		return Quantity[V]{}, err
	}
	resolved, err := q.reg.Resolve(u)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("In", err)
	}

	return Quantity[V]{value: v, unit: resolved, reg: q.reg}, nil
}

// InBase returns the quantity expressed in the base unit of its dimension.
// Quantities of an undeclared derived dimension move to its coherent unit.
func (q Quantity[V]) InBase() (Quantity[V], error) {
	if err := q.valid("InBase"); err != nil {
		return Quantity[V]{}, err
	}

	return q.In(q.reg.Coherent(q.Dimension()))
}

// String renders "value symbol", e.g. "1.5 km".
func (q Quantity[V]) String() string {
	bits := 32
	if wide[V]() {
		bits = 64
	}

	return strconv.FormatFloat(float64(q.value), 'g', -1, bits) + " " + q.unit.Symbol()
}

// ---------- shared helpers ----------

// valid reports ErrNoRegistry for the zero Quantity.
func (q Quantity[V]) valid(op string) error {
	if q.reg == nil {
		return quantityErrorf(op, ErrNoRegistry)
	}

	return nil
}

// with returns a quantity on the same registry.
func (q Quantity[V]) with(v V, u unit.Unit) Quantity[V] {
	return Quantity[V]{value: v, unit: u, reg: q.reg}
}

// requireSameDimension fails with ErrDimensionMismatch when o's dimension differs.
func (q Quantity[V]) requireSameDimension(op string, o Quantity[V]) error {
	if err := q.valid(op); err != nil {
		return err
	}
	if !q.Dimension().Equal(o.Dimension()) {
		sys := q.reg.System()
		return fmt.Errorf("%s(%s, %s): %s vs %s: %w",
			op, q.unit, o.unit, sys.Format(q.Dimension()), sys.Format(o.Dimension()), ErrDimensionMismatch)
	}

	return nil
}

// align converts o into q's unit after checking that the dimensions match.
func (q Quantity[V]) align(op string, o Quantity[V]) (V, error) {
	if err := q.requireSameDimension(op, o); err != nil {
		return 0, err
	}
	v, err := q.reg.Convert(o.unit, q.unit, float64(o.value))
	if err != nil {
		return 0, quantityErrorf(op, err)
	}

	return V(v), nil
}

// linear moves an offset-unit quantity to its base unit; linear quantities
// are returned unchanged.
func (q Quantity[V]) linear(op string) (Quantity[V], error) {
	if err := q.valid(op); err != nil {
		return Quantity[V]{}, err
	}
	if q.unit.IsLinear() {
		return q, nil
	}

	return q.with(q.BaseValue(), q.reg.Coherent(q.Dimension())), nil
}

// derived canonicalises a formal unit produced by arithmetic.
func (q Quantity[V]) derived(u unit.Unit) unit.Unit { return q.reg.Canonical(u) }

// wide reports whether V carries 64-bit precision.
func wide[V Number]() bool {
	one := V(1)

	return one+V(0x1p-30) != one
}
