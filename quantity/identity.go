// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Additive and multiplicative identities, and the IEEE-754 special values
//     of a unit.
//
// Note:
//   - Zero is unit-invariant only for linear units (0 m ≡ 0 km), so Zero refuses
//     offset units; Origin is the narrower "value 0 in this unit" request that
//     every unit supports.

package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/unit"
)

// Zero returns the additive identity in u.
// Errors: ErrUndefinedIdentity for offset units; as New otherwise.
func Zero[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	if !u.IsLinear() {
		return Quantity[V]{}, fmt.Errorf("Zero(%s): offset %g: %w", u, u.Offset(), ErrUndefinedIdentity)
	}

	return New[V](reg, 0, u)
}

// Origin returns the value 0 expressed in u, for any unit. For offset units
// this is not an additive identity: Origin(°C) converts to 32 °F.
// Errors: as New.
func Origin[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New[V](reg, 0, u)
}

// One returns the multiplicative identity. u must be the linear base unit of
// the dimensionless dimension.
// Errors: ErrUndefinedIdentity; as New otherwise.
func One[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	if reg == nil {
		return Quantity[V]{}, quantityErrorf("One", ErrNoRegistry)
	}
	if !u.IsLinear() || !u.Dimension().IsDimensionless() || !reg.IsBase(u) {
		return Quantity[V]{}, fmt.Errorf("One(%s): %w", u, ErrUndefinedIdentity)
	}

	return New[V](reg, 1, u)
}

// IsZero reports whether q is the additive identity: a linear unit holding 0.
func (q Quantity[V]) IsZero() bool { return q.unit.IsLinear() && q.value == 0 }

// IsOne reports whether q is dimensionless and equals 1 in the base unit.
func (q Quantity[V]) IsOne() bool {
	return q.Dimension().IsDimensionless() && q.unit.IsLinear() && q.BaseValue() == 1
}

// NaN returns a NaN quantity in u.
func NaN[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New(reg, V(math.NaN()), u)
}

// Inf returns +Inf in u when sign ≥ 0, -Inf otherwise.
func Inf[V Number](reg *registry.Registry, u unit.Unit, sign int) (Quantity[V], error) {
	return New(reg, V(math.Inf(sign)), u)
}

// NegZero returns -0 in u.
func NegZero[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New(reg, V(math.Copysign(0, -1)), u)
}

// MaxValue returns the largest finite value of V in u.
func MaxValue[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New(reg, maxFinite[V](), u)
}

// MinValue returns the most negative finite value of V in u.
func MinValue[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New(reg, -maxFinite[V](), u)
}

// MinPositive returns the smallest positive normal value of V in u.
func MinPositive[V Number](reg *registry.Registry, u unit.Unit) (Quantity[V], error) {
	return New(reg, smallestNormal[V](), u)
}

func maxFinite[V Number]() V {
	if wide[V]() {
		m := math.MaxFloat64
		return V(m)
	}
	m := float64(math.MaxFloat32)

	return V(m)
}

func smallestNormal[V Number]() V {
	if wide[V]() {
		m := 0x1p-1022
		return V(m)
	}
	m := 0x1p-126

	return V(m)
}
