// SPDX-License-Identifier: MIT

package quantity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrig_AngleUnits(t *testing.T) {
	s, err := q(t, 30, "°").Sin()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Value(), 1e-12)
	assert.Equal(t, "unitless", s.Unit().Name())

	c, err := q(t, 0.25, "tr").Cos()
	require.NoError(t, err)
	assert.InDelta(t, 0, c.Value(), 1e-12)

	tan, err := q(t, 50, "gon").Tan()
	require.NoError(t, err)
	assert.InDelta(t, 1, tan.Value(), 1e-12)

	sin, cos, err := q(t, math.Pi/3, "rad").SinCos()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)/2, sin.Value(), 1e-12)
	assert.InDelta(t, 0.5, cos.Value(), 1e-12)

	_, err = q(t, 1, "m").Sin()
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	_, _, err = q(t, 1, "s").SinCos()
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestTrig_Inverse(t *testing.T) {
	a, err := q(t, 0.5, "1").Asin()
	require.NoError(t, err)
	deg, err := a.ValueAs(catalog.SI().MustUnit("°"))
	require.NoError(t, err)
	assert.InDelta(t, 30, deg, 1e-9)

	a, err = q(t, 0, "1").Acos()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, a.Value(), 1e-12)

	a, err = q(t, 1, "1").Atan()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, a.Value(), 1e-12)

	a, err = q(t, 1, "km").Atan2(q(t, -1000, "m"))
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/4, a.Value(), 1e-12)

	// Offset units are read in kelvin: both points are (0 K, 283.15 K).
	c, err := q(t, 10, "°C").Atan2(q(t, 0, "K"))
	require.NoError(t, err)
	k, err := q(t, 283.15, "K").Atan2(q(t, 0, "K"))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, k.Value(), 1e-12)
	assert.InDelta(t, k.Value(), c.Value(), 1e-12)

	_, err = q(t, 1, "m").Asin()
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	_, err = q(t, 1, "m").Atan2(q(t, 1, "s"))
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestTrig_SeparateAngleDimension(t *testing.T) {
	sys, err := dimension.NewSystem("SI+angle", append(dimension.SI().Bases(), dimension.Base{Name: "angle", Symbol: "A"})...)
	require.NoError(t, err)
	b := registry.NewBuilder(sys, registry.WithAngleDimension("plane angle"))
	decls := []registry.DimensionDecl{
		{Name: "ratio", Exponents: []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{Name: "plane angle", Exponents: []int{0, 0, 0, 0, 0, 0, 0, 1}},
		{Name: "length", Exponents: []int{1, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, d := range decls {
		require.NoError(t, b.DeclareDimension(d))
	}
	units := []registry.UnitDecl{
		{Name: "one", Symbol: "1", Dimension: "ratio", Base: true},
		{Name: "radian", Symbol: "rad", Dimension: "plane angle", Base: true},
		{Name: "degree", Symbol: "°", Dimension: "plane angle", Scale: math.Pi / 180},
		{Name: "meter", Symbol: "m", Dimension: "length", Base: true},
	}
	for _, u := range units {
		require.NoError(t, b.DeclareUnit(u))
	}
	reg, err := b.Build()
	require.NoError(t, err)

	s, err := quantity.MustNew(reg, 90.0, reg.MustUnit("°")).Sin()
	require.NoError(t, err)
	assert.InDelta(t, 1, s.Value(), 1e-12)
	assert.Equal(t, "one", s.Unit().Name())

	// A plain ratio is no longer an angle.
	_, err = quantity.MustNew(reg, 1.0, reg.MustUnit("1")).Sin()
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)

	a, err := quantity.MustNew(reg, 1.0, reg.MustUnit("1")).Asin()
	require.NoError(t, err)
	assert.Equal(t, "radian", a.Unit().Name())

	a, err = quantity.MustNew(reg, 3.0, reg.MustUnit("m")).Atan2(quantity.MustNew(reg, 3.0, reg.MustUnit("m")))
	require.NoError(t, err)
	assert.Equal(t, "rad", a.Unit().Symbol())
	assert.InDelta(t, math.Pi/4, a.Value(), 1e-12)
}

func TestHyperbolicExpLog(t *testing.T) {
	cases := []struct {
		name string
		f    func(quantity.Quantity[float64]) (quantity.Quantity[float64], error)
		in   float64
		want float64
	}{
		{"Sinh", quantity.Quantity[float64].Sinh, 1, math.Sinh(1)},
		{"Cosh", quantity.Quantity[float64].Cosh, 1, math.Cosh(1)},
		{"Tanh", quantity.Quantity[float64].Tanh, 1, math.Tanh(1)},
		{"Asinh", quantity.Quantity[float64].Asinh, 1, math.Asinh(1)},
		{"Acosh", quantity.Quantity[float64].Acosh, 2, math.Acosh(2)},
		{"Atanh", quantity.Quantity[float64].Atanh, 0.5, math.Atanh(0.5)},
		{"Exp", quantity.Quantity[float64].Exp, 1, math.E},
		{"Exp2", quantity.Quantity[float64].Exp2, 10, 1024},
		{"ExpM1", quantity.Quantity[float64].ExpM1, 1e-10, math.Expm1(1e-10)},
		{"Ln", quantity.Quantity[float64].Ln, math.E, 1},
		{"Ln1p", quantity.Quantity[float64].Ln1p, 1e-10, math.Log1p(1e-10)},
		{"Log2", quantity.Quantity[float64].Log2, 8, 3},
		{"Log10", quantity.Quantity[float64].Log10, 1000, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f(q(t, tc.in, "1"))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got.Value(), 1e-12)
			assert.True(t, got.Dimension().IsDimensionless())

			_, err = tc.f(q(t, tc.in, "m"))
			assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
		})
	}

	l, err := q(t, 81, "1").Log(3)
	require.NoError(t, err)
	assert.InDelta(t, 4, l.Value(), 1e-12)

	// Ratios in other dimensionless units are read in the base unit first.
	e, err := q(t, 50, "%").Exp()
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(0.5), e.Value(), 1e-12)
}

func TestRounding(t *testing.T) {
	x := q(t, -2.5, "m")
	assert.Equal(t, -3.0, x.Floor().Value())
	assert.Equal(t, -2.0, x.Ceil().Value())
	assert.Equal(t, -3.0, x.Round().Value())
	assert.Equal(t, -2.0, x.Trunc().Value())
	assert.Equal(t, -0.5, x.Fract().Value())
	assert.Equal(t, "m", x.Floor().Unit().Symbol())
}

func TestClassify(t *testing.T) {
	reg := catalog.SI()
	m := reg.MustUnit("m")
	cases := []struct {
		v    float64
		want quantity.Category
	}{
		{math.NaN(), quantity.CategoryNaN},
		{math.Inf(1), quantity.CategoryInfinite},
		{0, quantity.CategoryZero},
		{5e-324, quantity.CategorySubnormal},
		{1, quantity.CategoryNormal},
	}
	for _, tc := range cases {
		x := quantity.MustNew(reg, tc.v, m)
		assert.Equal(t, tc.want, x.Classify(), tc.want.String())
	}

	// Judged at the precision of the value type.
	f32 := quantity.MustNew(reg, float32(1e-40), m)
	assert.Equal(t, quantity.CategorySubnormal, f32.Classify())
	assert.False(t, f32.IsNormal())
	assert.True(t, quantity.MustNew(reg, 1e-40, m).IsNormal())

	x := quantity.MustNew(reg, math.Inf(-1), m)
	assert.True(t, x.IsInf())
	assert.False(t, x.IsFinite())
	assert.True(t, x.IsSignNegative())
	assert.False(t, x.IsSignPositive())
	assert.Equal(t, "Category(9)", quantity.Category(9).String())
}
