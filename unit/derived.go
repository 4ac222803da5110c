// SPDX-License-Identifier: MIT

// Package unit: formal derived units. A derived unit keeps the scale of its
// operands relative to their base units; its base is the coherent product of
// the operand bases, so it is only meaningful in a coherent unit system.

package unit

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvunits/dimension"
)

// Product returns the formal unit a·b.
// Errors: ErrNonLinearUnit when either operand has an offset;
// dimension.ErrDimensionMismatch when ranks differ.
func Product(a, b Unit) (Unit, error) {
	if err := requireLinear("Product", a, b); err != nil {
		return Unit{}, err
	}
	dim, err := dimension.Mul(a.dim, b.dim)
	if err != nil {
		return Unit{}, fmt.Errorf("Product(%s, %s): %w", a, b, err)
	}

	return derive(
		a.name+"·"+b.name,
		group(a.symbol)+"·"+group(b.symbol),
		dim, a.rule.Scale*b.rule.Scale,
	), nil
}

// Quotient returns the formal unit a/b.
// Errors: as Product.
func Quotient(a, b Unit) (Unit, error) {
	if err := requireLinear("Quotient", a, b); err != nil {
		return Unit{}, err
	}
	dim, err := dimension.Div(a.dim, b.dim)
	if err != nil {
		return Unit{}, fmt.Errorf("Quotient(%s, %s): %w", a, b, err)
	}

	return derive(
		a.name+" per "+b.name,
		group(a.symbol)+"/"+group(b.symbol),
		dim, a.rule.Scale/b.rule.Scale,
	), nil
}

// Power returns the formal unit a^n. Power(a, 1) returns a unchanged.
// Errors: ErrNonLinearUnit.
func Power(a Unit, n int) (Unit, error) {
	if err := requireLinear("Power", a); err != nil {
		return Unit{}, err
	}
	if n == 1 {
		return a, nil
	}

	return derive(
		fmt.Sprintf("%s^%d", a.name, n),
		fmt.Sprintf("%s^%d", group(a.symbol), n),
		dimension.Pow(a.dim, n), math.Pow(a.rule.Scale, float64(n)),
	), nil
}

// Root returns the formal unit a^(1/n).
// Errors: ErrNonLinearUnit; dimension.ErrNonIntegerRootExponent and
// dimension.ErrBadRootIndex from the dimension rule; ErrInvalidScale for an
// even root of a negative scale.
func Root(a Unit, n int) (Unit, error) {
	if err := requireLinear("Root", a); err != nil {
		return Unit{}, err
	}
	dim, err := dimension.Root(a.dim, n)
	if err != nil {
		return Unit{}, fmt.Errorf("Root(%s, %d): %w", a, n, err)
	}
	scale, err := rootScale(a.rule.Scale, n)
	if err != nil {
		return Unit{}, fmt.Errorf("Root(%s, %d): %w", a, n, err)
	}

	return derive(
		fmt.Sprintf("%s^(1/%d)", a.name, n),
		fmt.Sprintf("%s^(1/%d)", group(a.symbol), n),
		dim, scale,
	), nil
}

func derive(name, symbol string, dim dimension.Dimension, scale float64) Unit {
	return Unit{name: name, symbol: symbol, dim: dim, rule: Linear(scale), derived: true}
}

func requireLinear(op string, us ...Unit) error {
	for _, u := range us {
		if !u.IsLinear() {
			return fmt.Errorf("%s: %s has offset %g: %w", op, u, u.rule.Offset, ErrNonLinearUnit)
		}
	}

	return nil
}

// rootScale computes s^(1/n) exactly for square and cube roots.
func rootScale(s float64, n int) (float64, error) {
	switch {
	case n == 2 && s > 0:
		return math.Sqrt(s), nil
	case n == 3:
		return math.Cbrt(s), nil
	case s > 0:
		return math.Pow(s, 1/float64(n)), nil
	case n%2 == 1:
		return -math.Pow(-s, 1/float64(n)), nil
	}

	return 0, ErrInvalidScale
}

// group parenthesises composite symbols so "m/s" squared prints "(m/s)^2".
func group(sym string) string {
	if strings.ContainsAny(sym, "·/^ ") {
		return "(" + sym + ")"
	}

	return sym
}

// Coherent returns the derived unit of scale 1 for dim, used as the base of a
// dimension nobody declared. symbol doubles as the name.
func Coherent(dim dimension.Dimension, symbol string) Unit {
	return derive(symbol, symbol, dim, 1)
}
