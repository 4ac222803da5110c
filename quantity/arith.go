// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Arithmetic with dimensional contracts: Add/Sub/Rem (equal dimensions),
//     Mul/Div (dimensions add/subtract), Pow/Root (scale exponents), MulAdd.
//
// Design:
//   - Same-dimension operations convert the right operand into the left
//     operand's unit and keep that unit.
//   - Dimension-changing operations normalise offset units to their base
//     first, then build the formal derived unit and canonicalise it.

package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// maxRationalDenominator bounds the denominator PowQuantity tries when the
// exponent is not an integer.
const maxRationalDenominator = 12

// Add returns q + o in q's unit.
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(N) for N base dimensions.
func (q Quantity[V]) Add(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("Add", o)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(q.value+v, q.unit), nil
}

// Sub returns q - o in q's unit.
// Errors: as Add.
func (q Quantity[V]) Sub(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("Sub", o)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(q.value-v, q.unit), nil
}

// AbsSub returns max(q - o, 0) in q's unit.
// Errors: as Add.
func (q Quantity[V]) AbsSub(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("AbsSub", o)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(V(math.Dim(float64(q.value), float64(v))), q.unit), nil
}

// Rem returns the floating-point remainder of q / o after converting o into
// q's unit. The result has the sign of q.
// Errors: as Add.
func (q Quantity[V]) Rem(o Quantity[V]) (Quantity[V], error) {
	v, err := q.align("Rem", o)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(V(math.Mod(float64(q.value), float64(v))), q.unit), nil
}

// RemScalar returns the remainder of q's value divided by k, unit preserved.
func (q Quantity[V]) RemScalar(k V) Quantity[V] {
	return q.with(V(math.Mod(float64(q.value), float64(k))), q.unit)
}

// Mul returns q·o. The result unit is the product of the operand units,
// canonicalised to a declared unit when one matches (m·m → m²).
// Errors: ErrDimensionMismatch when the operand ranks differ.
func (q Quantity[V]) Mul(o Quantity[V]) (Quantity[V], error) {
	a, b, err := linearPair("Mul", q, o)
	if err != nil {
		return Quantity[V]{}, err
	}
	u, err := unit.Product(a.unit, b.unit)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("Mul", err)
	}

	return a.with(a.value*b.value, a.derived(u)), nil
}

// Div returns q/o with the quotient unit, canonicalised like Mul.
// Division by a zero value follows IEEE-754 (±Inf or NaN).
// Errors: as Mul.
func (q Quantity[V]) Div(o Quantity[V]) (Quantity[V], error) {
	a, b, err := linearPair("Div", q, o)
	if err != nil {
		return Quantity[V]{}, err
	}
	u, err := unit.Quotient(a.unit, b.unit)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("Div", err)
	}

	return a.with(a.value/b.value, a.derived(u)), nil
}

// MulScalar returns q with its value multiplied by k; unit preserved.
// On an offset unit the raw value is scaled (2 × 10 °C = 20 °C).
func (q Quantity[V]) MulScalar(k V) Quantity[V] { return q.with(q.value*k, q.unit) }

// DivScalar returns q with its value divided by k; unit preserved.
func (q Quantity[V]) DivScalar(k V) Quantity[V] { return q.with(q.value/k, q.unit) }

// Neg returns -q.
func (q Quantity[V]) Neg() Quantity[V] { return q.with(-q.value, q.unit) }

// Abs returns |q|.
func (q Quantity[V]) Abs() Quantity[V] {
	return q.with(V(math.Abs(float64(q.value))), q.unit)
}

// Signum returns ±1 in q's unit carrying the sign of the value (+0 gives +1,
// -0 gives -1); NaN stays NaN.
func (q Quantity[V]) Signum() Quantity[V] {
	v := float64(q.value)
	if math.IsNaN(v) {
		return q
	}

	return q.with(V(math.Copysign(1, v)), q.unit)
}

// IsPositive reports whether the sign bit is clear (+0 included).
func (q Quantity[V]) IsPositive() bool { return !math.Signbit(float64(q.value)) }

// IsNegative reports whether the sign bit is set (-0 included).
func (q Quantity[V]) IsNegative() bool { return math.Signbit(float64(q.value)) }

// Pow returns q^n. Every exponent of the dimension is multiplied by n.
// Pow(0) yields 1 in the dimensionless unit.
func (q Quantity[V]) Pow(n int) (Quantity[V], error) {
	a, err := q.linear("Pow")
	if err != nil {
		return Quantity[V]{}, err
	}
	u, err := unit.Power(a.unit, n)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("Pow", err)
	}

	return a.with(V(math.Pow(float64(a.value), float64(n))), a.derived(u)), nil
}

// Recip returns 1/q, i.e. Pow(-1).
func (q Quantity[V]) Recip() (Quantity[V], error) { return q.Pow(-1) }

// Root returns the n-th root of q.
// Implementation:
//   - Stage 1: normalise offset units to base.
//   - Stage 2: divide every exponent by n (ErrNonIntegerRootExponent when one
//     is not divisible, dimension.ErrBadRootIndex for n < 2).
//   - Stage 3: take the real root of the value; odd roots keep the sign.
func (q Quantity[V]) Root(n int) (Quantity[V], error) {
	a, err := q.linear("Root")
	if err != nil {
		return Quantity[V]{}, err
	}
	u, err := unit.Root(a.unit, n)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("Root", err)
	}

	return a.with(V(realRoot(float64(a.value), n)), a.derived(u)), nil
}

// Sqrt is Root(2).
func (q Quantity[V]) Sqrt() (Quantity[V], error) { return q.Root(2) }

// Cbrt is Root(3).
func (q Quantity[V]) Cbrt() (Quantity[V], error) { return q.Root(3) }

// PowQuantity raises q to a dimensionless exponent quantity.
// Implementation:
//   - Stage 1: the exponent must be dimensionless; its value is read in the
//     dimensionless base unit (50 % → 0.5).
//   - Stage 2: a dimensionless q accepts any real exponent.
//   - Stage 3: otherwise the exponent must be an integer or a fraction p/d
//     (d ≤ 12), both matched within the registry epsilon, whose root the
//     dimension admits.
//
// Errors: ErrDimensionMismatch for a dimensioned exponent;
// ErrNonIntegerRootExponent when no representable exponent results.
func (q Quantity[V]) PowQuantity(e Quantity[V]) (Quantity[V], error) {
	if err := q.valid("PowQuantity"); err != nil {
		return Quantity[V]{}, err
	}
	if err := e.valid("PowQuantity"); err != nil {
		return Quantity[V]{}, err
	}
	if !e.Dimension().IsDimensionless() {
		return Quantity[V]{}, fmt.Errorf("PowQuantity(%s): exponent %s: %w", q.unit, e.unit, ErrDimensionMismatch)
	}
	x := e.unit.ToBase(float64(e.value))

	if q.Dimension().IsDimensionless() {
		a, err := q.InBase()
		if err != nil {
			return Quantity[V]{}, quantityErrorf("PowQuantity", err)
		}

		return a.with(V(math.Pow(float64(a.value), x)), a.unit), nil
	}

	p, d, ok := rational(x, maxRationalDenominator, q.reg.Epsilon())
	if !ok {
		return Quantity[V]{}, fmt.Errorf("PowQuantity(%s, %g): %w", q.unit, x, ErrNonIntegerRootExponent)
	}
	if d == 1 {
		return q.Pow(p)
	}
	if _, err := dimension.PowRational(q.Dimension(), p, d); err != nil {
		return Quantity[V]{}, fmt.Errorf("PowQuantity(%s, %d/%d): %w", q.unit, p, d, err)
	}
	r, err := q.Root(d)
	if err != nil {
		return Quantity[V]{}, err
	}

	return r.Pow(p)
}

// MulAdd returns q·b + c as one operation. c must have the dimension of q·b;
// it is converted into the product unit, which is also the result unit.
// Fused (single rounding via math.FMA) for 64-bit values when the registry
// allows it; sequential otherwise, with the same dimensional contract.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) MulAdd(b, c Quantity[V]) (Quantity[V], error) {
	x, y, err := linearPair("MulAdd", q, b)
	if err != nil {
		return Quantity[V]{}, err
	}
	pu, err := unit.Product(x.unit, y.unit)
	if err != nil {
		return Quantity[V]{}, quantityErrorf("MulAdd", err)
	}
	prod := x.with(0, x.derived(pu))
	addend, err := prod.align("MulAdd", c)
	if err != nil {
		return Quantity[V]{}, err
	}

	return prod.with(fma(q.reg.FusedMulAdd(), x.value, y.value, addend), prod.unit), nil
}

// MulAddScalar returns q·k + m with both factors plain numbers; unit preserved.
func (q Quantity[V]) MulAddScalar(k, m V) Quantity[V] {
	fused := q.reg != nil && q.reg.FusedMulAdd()

	return q.with(fma(fused, q.value, k, m), q.unit)
}

// MulAddMixed returns q·k + addend, where addend shares q's dimension and is
// converted into q's unit first.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) MulAddMixed(k V, addend Quantity[V]) (Quantity[V], error) {
	v, err := q.align("MulAddMixed", addend)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(fma(q.reg.FusedMulAdd(), q.value, k, v), q.unit), nil
}

// Hypot returns sqrt(q² + o²) without undue overflow, in q's (linear) unit.
// Errors: ErrDimensionMismatch.
func (q Quantity[V]) Hypot(o Quantity[V]) (Quantity[V], error) {
	a, err := q.linear("Hypot")
	if err != nil {
		return Quantity[V]{}, err
	}
	v, err := a.align("Hypot", o)
	if err != nil {
		return Quantity[V]{}, err
	}

	return a.with(V(math.Hypot(float64(a.value), float64(v))), a.unit), nil
}

// ---------- helpers ----------

// linearPair normalises both operands of a dimension-changing operation.
func linearPair[V Number](op string, a, b Quantity[V]) (Quantity[V], Quantity[V], error) {
	x, err := a.linear(op)
	if err != nil {
		return x, x, err
	}
	y, err := b.linear(op)
	if err != nil {
		return x, y, err
	}

	return x, y, nil
}

// fma evaluates a*b + c, fused when allowed and V is 64-bit.
func fma[V Number](fused bool, a, b, c V) V {
	if fused && wide[V]() {
		return V(math.FMA(float64(a), float64(b), float64(c)))
	}

	// The conversion forces rounding of the product before the add.
	return V(a*b) + c
}

// realRoot returns the real n-th root of v; odd roots of negatives keep the sign.
func realRoot(v float64, n int) float64 {
	switch {
	case n == 2:
		return math.Sqrt(v)
	case n == 3:
		return math.Cbrt(v)
	case v < 0 && n%2 == 1:
		return -math.Pow(-v, 1/float64(n))
	}

	return math.Pow(v, 1/float64(n))
}

// rational finds p/d ≈ x with 1 ≤ d ≤ maxDen in lowest terms.
func rational(x float64, maxDen int, eps float64) (p, d int, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, false
	}
	tol := eps * math.Max(1, math.Abs(x))
	for d = 1; d <= maxDen; d++ {
		n := math.Round(x * float64(d))
		if math.Abs(n/float64(d)-x) <= tol && math.Abs(n) <= math.MaxInt32 {
			p = int(n)
			if gcd(p, d) == 1 {
				return p, d, true
			}
		}
	}

	return 0, 0, false
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
