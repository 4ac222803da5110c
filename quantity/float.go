// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - The numeric tower over quantities: trigonometric, hyperbolic,
//     exponential and logarithmic functions, rounding and classification.
//
// Dimensional preconditions:
//   - Sin/Cos/Tan/SinCos: operand in the registry angle dimension; result dimensionless.
//   - Asin/Acos/Atan: dimensionless operand; result in the angle base unit.
//   - Atan2: operands of equal dimension; result in the angle base unit.
//   - Hyperbolic, Exp*, Ln*, Log*: dimensionless operand and result.
//   - Rounding and classification: any dimension, unit preserved.
//
// Violations fail with ErrDimensionMismatch.

package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvunits/unit"
)

// Category classifies a floating-point value.
type Category int

const (
	// CategoryNaN is a NaN value.
	CategoryNaN Category = iota
	// CategoryInfinite is ±Inf.
	CategoryInfinite
	// CategoryZero is ±0.
	CategoryZero
	// CategorySubnormal is a nonzero value below the smallest normal of V.
	CategorySubnormal
	// CategoryNormal is every other finite value.
	CategoryNormal
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "nan"
	case CategoryInfinite:
		return "infinite"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// ---------- trigonometric ----------

// Sin returns the sine of an angle.
func (q Quantity[V]) Sin() (Quantity[V], error) { return q.angleToRatio("Sin", math.Sin) }

// Cos returns the cosine of an angle.
func (q Quantity[V]) Cos() (Quantity[V], error) { return q.angleToRatio("Cos", math.Cos) }

// Tan returns the tangent of an angle.
func (q Quantity[V]) Tan() (Quantity[V], error) { return q.angleToRatio("Tan", math.Tan) }

// SinCos returns Sin and Cos of an angle in one call.
func (q Quantity[V]) SinCos() (sin, cos Quantity[V], err error) {
	rad, err := q.angleValue("SinCos")
	if err != nil {
		return Quantity[V]{}, Quantity[V]{}, err
	}
	one, err := q.ratioUnit("SinCos")
	if err != nil {
		return Quantity[V]{}, Quantity[V]{}, err
	}
	s, c := math.Sincos(rad)

	return q.with(V(s), one), q.with(V(c), one), nil
}

// Asin returns the arcsine of a dimensionless ratio as an angle.
func (q Quantity[V]) Asin() (Quantity[V], error) { return q.ratioToAngle("Asin", math.Asin) }

// Acos returns the arccosine of a dimensionless ratio as an angle.
func (q Quantity[V]) Acos() (Quantity[V], error) { return q.ratioToAngle("Acos", math.Acos) }

// Atan returns the arctangent of a dimensionless ratio as an angle.
func (q Quantity[V]) Atan() (Quantity[V], error) { return q.ratioToAngle("Atan", math.Atan) }

// Atan2 returns the angle of the point (x, q), i.e. atan(q/x) in the correct
// quadrant. q and x may have any dimension, as long as it is the same. Offset
// units are read in their base unit first, so 10 °C and 283.15 K agree.
func (q Quantity[V]) Atan2(x Quantity[V]) (Quantity[V], error) {
	a, err := q.linear("Atan2")
	if err != nil {
		return Quantity[V]{}, err
	}
	xv, err := a.align("Atan2", x)
	if err != nil {
		return Quantity[V]{}, err
	}
	au, err := a.angleUnit("Atan2")
	if err != nil {
		return Quantity[V]{}, err
	}

	return a.with(V(math.Atan2(float64(a.value), float64(xv))), au), nil
}

// ---------- hyperbolic ----------

// Sinh returns the hyperbolic sine.
func (q Quantity[V]) Sinh() (Quantity[V], error) { return q.ratio("Sinh", math.Sinh) }

// Cosh returns the hyperbolic cosine.
func (q Quantity[V]) Cosh() (Quantity[V], error) { return q.ratio("Cosh", math.Cosh) }

// Tanh returns the hyperbolic tangent.
func (q Quantity[V]) Tanh() (Quantity[V], error) { return q.ratio("Tanh", math.Tanh) }

// Asinh returns the inverse hyperbolic sine.
func (q Quantity[V]) Asinh() (Quantity[V], error) { return q.ratio("Asinh", math.Asinh) }

// Acosh returns the inverse hyperbolic cosine.
func (q Quantity[V]) Acosh() (Quantity[V], error) { return q.ratio("Acosh", math.Acosh) }

// Atanh returns the inverse hyperbolic tangent.
func (q Quantity[V]) Atanh() (Quantity[V], error) { return q.ratio("Atanh", math.Atanh) }

// ---------- exponential & logarithmic ----------

// Exp returns e^q.
func (q Quantity[V]) Exp() (Quantity[V], error) { return q.ratio("Exp", math.Exp) }

// Exp2 returns 2^q.
func (q Quantity[V]) Exp2() (Quantity[V], error) { return q.ratio("Exp2", math.Exp2) }

// ExpM1 returns e^q - 1, accurate near zero.
func (q Quantity[V]) ExpM1() (Quantity[V], error) { return q.ratio("ExpM1", math.Expm1) }

// Ln returns the natural logarithm.
func (q Quantity[V]) Ln() (Quantity[V], error) { return q.ratio("Ln", math.Log) }

// Ln1p returns ln(1 + q), accurate near zero.
func (q Quantity[V]) Ln1p() (Quantity[V], error) { return q.ratio("Ln1p", math.Log1p) }

// Log returns the logarithm of q in the given base.
func (q Quantity[V]) Log(base V) (Quantity[V], error) {
	b := math.Log(float64(base))

	return q.ratio("Log", func(x float64) float64 { return math.Log(x) / b })
}

// Log2 returns the base-2 logarithm.
func (q Quantity[V]) Log2() (Quantity[V], error) { return q.ratio("Log2", math.Log2) }

// Log10 returns the base-10 logarithm.
func (q Quantity[V]) Log10() (Quantity[V], error) { return q.ratio("Log10", math.Log10) }

// ---------- rounding (unit preserved) ----------

// Floor rounds the value toward -Inf.
func (q Quantity[V]) Floor() Quantity[V] { return q.apply(math.Floor) }

// Ceil rounds the value toward +Inf.
func (q Quantity[V]) Ceil() Quantity[V] { return q.apply(math.Ceil) }

// Round rounds the value half away from zero.
func (q Quantity[V]) Round() Quantity[V] { return q.apply(math.Round) }

// Trunc drops the fractional part of the value.
func (q Quantity[V]) Trunc() Quantity[V] { return q.apply(math.Trunc) }

// Fract keeps the fractional part of the value, with the sign of the value.
func (q Quantity[V]) Fract() Quantity[V] {
	return q.apply(func(x float64) float64 { return x - math.Trunc(x) })
}

// ---------- classification ----------

// IsNaN reports whether the value is NaN.
func (q Quantity[V]) IsNaN() bool { return math.IsNaN(float64(q.value)) }

// IsInf reports whether the value is ±Inf.
func (q Quantity[V]) IsInf() bool { return math.IsInf(float64(q.value), 0) }

// IsFinite reports whether the value is neither NaN nor ±Inf.
func (q Quantity[V]) IsFinite() bool { return !q.IsNaN() && !q.IsInf() }

// IsNormal reports whether the value is finite, nonzero and not subnormal.
func (q Quantity[V]) IsNormal() bool { return q.Classify() == CategoryNormal }

// IsSignPositive reports whether the sign bit is clear.
func (q Quantity[V]) IsSignPositive() bool { return q.IsPositive() }

// IsSignNegative reports whether the sign bit is set.
func (q Quantity[V]) IsSignNegative() bool { return q.IsNegative() }

// Classify returns the floating-point category of the value, judged at the
// precision of V.
func (q Quantity[V]) Classify() Category {
	v := float64(q.value)
	switch {
	case math.IsNaN(v):
		return CategoryNaN
	case math.IsInf(v, 0):
		return CategoryInfinite
	case v == 0:
		return CategoryZero
	case math.Abs(v) < float64(smallestNormal[V]()):
		return CategorySubnormal
	}

	return CategoryNormal
}

// ---------- helpers ----------

// apply maps the value through f, unit preserved.
func (q Quantity[V]) apply(f func(float64) float64) Quantity[V] {
	return q.with(V(f(float64(q.value))), q.unit)
}

// angleValue reads q in the angle base unit (radian).
func (q Quantity[V]) angleValue(op string) (float64, error) {
	if err := q.valid(op); err != nil {
		return 0, err
	}
	angle := q.reg.AngleDimension()
	if !q.Dimension().Equal(angle) {
		sys := q.reg.System()
		return 0, fmt.Errorf("%s(%s): got %s, want %s: %w", op, q.unit, sys.Format(q.Dimension()), sys.Format(angle), ErrDimensionMismatch)
	}

	return q.unit.ToBase(float64(q.value)), nil
}

// ratioValue reads a dimensionless q in the dimensionless base unit.
func (q Quantity[V]) ratioValue(op string) (float64, error) {
	if err := q.valid(op); err != nil {
		return 0, err
	}
	if !q.Dimension().IsDimensionless() {
		return 0, fmt.Errorf("%s(%s): %s is not dimensionless: %w", op, q.unit, q.reg.System().Format(q.Dimension()), ErrDimensionMismatch)
	}

	return q.unit.ToBase(float64(q.value)), nil
}

// ratioUnit is the unit of dimensionless results.
func (q Quantity[V]) ratioUnit(op string) (unit.Unit, error) {
	u, err := q.reg.Dimensionless()
	if err != nil {
		return unit.Unit{}, quantityErrorf(op, err)
	}

	return u, nil
}

// angleUnit is the unit of angle results.
func (q Quantity[V]) angleUnit(op string) (unit.Unit, error) {
	u, err := q.reg.BaseUnit(q.reg.AngleDimension())
	if err != nil {
		return unit.Unit{}, quantityErrorf(op, err)
	}

	return u, nil
}

func (q Quantity[V]) angleToRatio(op string, f func(float64) float64) (Quantity[V], error) {
	rad, err := q.angleValue(op)
	if err != nil {
		return Quantity[V]{}, err
	}
	one, err := q.ratioUnit(op)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(V(f(rad)), one), nil
}

func (q Quantity[V]) ratioToAngle(op string, f func(float64) float64) (Quantity[V], error) {
	x, err := q.ratioValue(op)
	if err != nil {
		return Quantity[V]{}, err
	}
	au, err := q.angleUnit(op)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(V(f(x)), au), nil
}

func (q Quantity[V]) ratio(op string, f func(float64) float64) (Quantity[V], error) {
	x, err := q.ratioValue(op)
	if err != nil {
		return Quantity[V]{}, err
	}
	one, err := q.ratioUnit(op)
	if err != nil {
		return Quantity[V]{}, err
	}

	return q.with(V(f(x)), one), nil
}
