// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	reg := catalog.SI()
	m := reg.MustUnit("m")

	_, err := quantity.New[float64](nil, 1, m)
	assert.ErrorIs(t, err, quantity.ErrNoRegistry)

	stray, err := unit.New("furlong", "fur", m.Dimension(), unit.Linear(201.168))
	require.NoError(t, err)
	_, err = quantity.New(reg, 1.0, stray)
	assert.ErrorIs(t, err, quantity.ErrUnitNotRegistered)

	assert.Panics(t, func() { quantity.MustNew(reg, 1.0, stray) })
}

func TestValueAs(t *testing.T) {
	reg := catalog.SI()
	d := q(t, 1500, "m")

	km, err := d.ValueAs(reg.MustUnit("km"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, km)

	in, err := d.In(reg.MustUnit("km"))
	require.NoError(t, err)
	assert.Equal(t, "1.5 km", in.String())
	assert.Equal(t, 1500.0, in.BaseValue())

	_, err = d.ValueAs(reg.MustUnit("s"))
	assert.ErrorIs(t, err, quantity.ErrUnitNotRegistered)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestFromBaseAndInBase(t *testing.T) {
	reg := catalog.SI()
	c, err := quantity.FromBase(reg, 273.15, reg.MustUnit("°C"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Value())

	base, err := q(t, 25, "°C").InBase()
	require.NoError(t, err)
	assert.Equal(t, "kelvin", base.Unit().Name())
	assert.InDelta(t, 298.15, base.Value(), 1e-12)

	// A derived unit of an undeclared dimension moves to its coherent unit.
	jerkUnit, err := unit.Quotient(reg.MustUnit("km"), mustPow(t, reg.MustUnit("h"), 3))
	require.NoError(t, err)
	jerk, err := quantity.New(reg, 3600.0*3600.0*3600.0, jerkUnit)
	require.NoError(t, err)
	coherent, err := jerk.InBase()
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, coherent.Value(), 1e-9)
	assert.Equal(t, "L·T^-3", coherent.Unit().Symbol())
}

func mustPow(t *testing.T, u unit.Unit, n int) unit.Unit {
	t.Helper()
	p, err := unit.Power(u, n)
	require.NoError(t, err)

	return p
}

func TestString_Float32(t *testing.T) {
	reg := catalog.SI()
	v := quantity.MustNew(reg, float32(0.1), reg.MustUnit("m"))
	assert.Equal(t, "0.1 m", v.String())
}

func TestZeroQuantity(t *testing.T) {
	var zero quantity.Quantity[float64]
	_, err := zero.Add(q(t, 1, "m"))
	assert.ErrorIs(t, err, quantity.ErrNoRegistry)
	_, err = zero.ValueAs(catalog.SI().MustUnit("m"))
	assert.ErrorIs(t, err, quantity.ErrNoRegistry)
	_, err = zero.Sin()
	assert.ErrorIs(t, err, quantity.ErrNoRegistry)
}

func TestCustomValueType(t *testing.T) {
	type meters float64
	reg := catalog.SI()
	a := quantity.MustNew(reg, meters(2), reg.MustUnit("m"))
	b := quantity.MustNew(reg, meters(3), reg.MustUnit("m"))
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, meters(5), sum.Value())
	assert.True(t, sum.Dimension().Equal(dimension.FromExponents([]int{1, 0, 0, 0, 0, 0, 0})))
}
