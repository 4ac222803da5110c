// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Ordering and equality across units of one dimension. The right operand
//     is converted into the left operand's unit before comparing.

package quantity

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Cmp returns -1, 0 or +1 comparing q with o. NaN orders before every number.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Cmp(o Quantity[V]) (int, error) {
	v, err := q.align("Cmp", o)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(q.value, v), nil
}

// Less reports q < o.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Less(o Quantity[V]) (bool, error) {
	v, err := q.align("Less", o)
	if err != nil {
		return false, err
	}

	return q.value < v, nil
}

// Equal reports exact equality after conversion.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Equal(o Quantity[V]) (bool, error) {
	v, err := q.align("Equal", o)
	if err != nil {
		return false, err
	}

	return q.value == v, nil
}

// ApproxEqual reports equality after conversion within eps, applied both as an
// absolute and a relative tolerance. eps ≤ 0 selects the registry epsilon.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) ApproxEqual(o Quantity[V], eps float64) (bool, error) {
	v, err := q.align("ApproxEqual", o)
	if err != nil {
		return false, err
	}
	if eps <= 0 {
		eps = q.reg.Epsilon()
	}

	return scalar.EqualWithinAbsOrRel(float64(q.value), float64(v), eps, eps), nil
}

// Min returns the smaller operand, unchanged (in its own unit). A NaN operand
// loses to a number.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Min(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("Min", o)
	if err != nil {
		return Quantity[V]{}, err
	}
	if math.IsNaN(float64(q.value)) || v < q.value {
		return o, nil
	}

	return q, nil
}

// Max returns the larger operand, unchanged (in its own unit). A NaN operand
// loses to a number.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Max(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("Max", o)
	if err != nil {
		return Quantity[V]{}, err
	}
	if math.IsNaN(float64(q.value)) || v > q.value {
		return o, nil
	}

	return q, nil
}
