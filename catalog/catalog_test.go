// SPDX-License-Identifier: MIT

package catalog_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSI_BuildsOnce(t *testing.T) {
	r1 := catalog.SI()
	r2 := catalog.SI()
	assert.Same(t, r1, r2)
	assert.Len(t, r1.Dimensions(), 19)
}

func TestSI_Conversions(t *testing.T) {
	r := catalog.SI()
	tests := []struct {
		from, to string
		in, want float64
		tol      float64
	}{
		{"m", "km", 1500, 1.5, 0},
		{"°C", "K", 0, 273.15, 0},
		{"°C", "°F", 100, 212, 1e-9},
		{"°F", "°C", -40, -40, 1e-9},
		{"K", "°R", 100, 180, 1e-9},
		{"°C", "°Ré", 100, 80, 1e-9},
		{"mi", "km", 1, 1.609344, 1e-12},
		{"h", "s", 2, 7200, 0},
		{"km/h", "m/s", 36, 10, 1e-12},
		{"kWh", "J", 1, 3.6e6, 1e-6},
		{"tr", "°", 1, 360, 1e-9},
		{"rad", "°", math.Pi, 180, 1e-9},
		{"%", "1", 50, 0.5, 1e-15},
		{"atm", "kPa", 1, 101.325, 1e-9},
		{"lb", "g", 1, 453.59237, 1e-9},
		{"ha", "m²", 1, 1e4, 0},
		{"mL", "cm³", 1, 1, 1e-12},
	}
	for _, tc := range tests {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			v, err := r.Convert(r.MustUnit(tc.from), r.MustUnit(tc.to), tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, tc.tol)
		})
	}
}

func TestSI_CelsiusToFahrenheitMatchesFormula(t *testing.T) {
	r := catalog.SI()
	c, f := r.MustUnit("celsius"), r.MustUnit("fahrenheit")
	for v := -100.0; v <= 100; v += 0.5 {
		got, err := r.Convert(c, f, v)
		require.NoError(t, err)
		assert.InDelta(t, v*9/5+32, got, 1e-9)
	}
}

func TestDeclarations_IsACopy(t *testing.T) {
	a := catalog.Declarations()
	b := catalog.Declarations()
	require.Empty(t, cmp.Diff(a, b))

	a.Units[0].Name = "changed"
	a.Dimensions[1].Exponents[0] = 9
	a.Units[1].Prefixes[0] = "x"
	assert.NotEmpty(t, cmp.Diff(a, catalog.Declarations()))
	assert.Empty(t, cmp.Diff(b, catalog.Declarations()))
}

func TestDeclarations_PrefixExpansion(t *testing.T) {
	c := catalog.Catalog{
		Dimensions: []catalog.DimensionSpec{{Name: "length", Exponents: []int{1, 0, 0, 0, 0, 0, 0}}},
		Units: []catalog.UnitSpec{
			{Name: "meter", Symbol: "m", Dimension: "length", Base: true, Prefixes: []string{"kilo", "u"}},
		},
	}
	_, units, _, err := c.Declarations()
	require.NoError(t, err)

	want := []registry.UnitDecl{
		{Name: "meter", Symbol: "m", Dimension: "length", Base: true},
		{Name: "kilometer", Symbol: "km", Dimension: "length", Scale: 1e3},
		{Name: "micrometer", Symbol: "µm", Dimension: "length", Scale: 1e-6},
	}
	assert.Empty(t, cmp.Diff(want, units))
}

func TestDeclarations_Errors(t *testing.T) {
	bad := catalog.Catalog{Units: []catalog.UnitSpec{{Name: "meter", Dimension: "length", Base: true, Prefixes: []string{"x"}}}}
	_, _, _, err := bad.Declarations()
	assert.ErrorIs(t, err, catalog.ErrUnknownPrefix)

	offset := catalog.Catalog{Units: []catalog.UnitSpec{{Name: "celsius", Dimension: "temperature", Scale: 1, Offset: 273.15, Prefixes: []string{"m"}}}}
	_, _, _, err = offset.Declarations()
	assert.ErrorIs(t, err, catalog.ErrPrefixedOffset)
}

func TestPrefixes(t *testing.T) {
	ps := catalog.SIPrefixes()
	require.Len(t, ps, 24)
	assert.Equal(t, "quetta", ps[0].Name)
	assert.Equal(t, "quecto", ps[len(ps)-1].Name)
	for i := 1; i < len(ps); i++ {
		assert.Greater(t, ps[i-1].Factor, ps[i].Factor)
	}

	p, ok := catalog.LookupPrefix("da")
	require.True(t, ok)
	assert.Equal(t, 10.0, p.Factor)
	_, ok = catalog.LookupPrefix("kilobyte")
	assert.False(t, ok)
}

func TestBinaryPrefixes(t *testing.T) {
	ps := catalog.BinaryPrefixes()
	require.Len(t, ps, 8)
	assert.Equal(t, "yobi", ps[0].Name)
	assert.Equal(t, 1024.0, ps[len(ps)-1].Factor)
	ps[0].Factor = 0
	assert.NotZero(t, catalog.BinaryPrefixes()[0].Factor)

	for _, s := range []string{"Ki", "kibi"} {
		p, ok := catalog.LookupPrefix(s)
		require.True(t, ok, s)
		assert.Equal(t, "kibi", p.Name)
	}
	p, ok := catalog.LookupPrefix("Gi")
	require.True(t, ok)
	assert.Equal(t, float64(1<<30), p.Factor)
}

const bytesYAML = `
extends: SI
units:
  - name: bit
    symbol: b
    dimension: dimensionless
    scale: 1
  - name: byte
    symbol: B
    dimension: dimensionless
    scale: 8
    prefixes: [k, Ki, Mi]
`

func TestLoadYAML_BinaryPrefixedUnits(t *testing.T) {
	c, err := catalog.LoadYAML(strings.NewReader(bytesYAML))
	require.NoError(t, err)
	r, err := c.Build()
	require.NoError(t, err)

	kib := r.MustUnit("KiB")
	assert.Equal(t, "kibibyte", kib.Name())
	tests := []struct {
		from, to string
		in, want float64
	}{
		{"KiB", "B", 1, 1024},
		{"kB", "B", 1, 1000},
		{"MiB", "KiB", 1, 1024},
		{"B", "b", 3, 24},
	}
	for _, tc := range tests {
		v, err := r.Convert(r.MustUnit(tc.from), r.MustUnit(tc.to), tc.in)
		require.NoError(t, err, tc.from)
		assert.Equal(t, tc.want, v, "%s -> %s", tc.from, tc.to)
	}
}

const extraYAML = `
extends: SI
dimensions:
  - name: information
    exponents: [0, 0, 0, 0, 0, 0, 0]
units:
  - name: furlong
    symbol: fur
    dimension: length
    scale: 201.168
`

func TestLoadYAML_ExtendsSI(t *testing.T) {
	c, err := catalog.LoadYAML(strings.NewReader(extraYAML))
	require.NoError(t, err)
	assert.Empty(t, c.Extends)
	assert.Len(t, c.Units, len(catalog.Declarations().Units)+1)

	// "information" reuses the dimensionless vector, which the registry rejects.
	_, err = c.Build()
	assert.ErrorIs(t, err, registry.ErrDuplicateDimension)

	c.Dimensions = c.Dimensions[:len(c.Dimensions)-1]
	r, err := c.Build()
	require.NoError(t, err)
	v, err := r.Convert(r.MustUnit("fur"), r.MustUnit("m"), 10)
	require.NoError(t, err)
	assert.InDelta(t, 2011.68, v, 1e-9)
}

func TestLoadYAML_Errors(t *testing.T) {
	_, err := catalog.LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	_, err = catalog.LoadYAML(strings.NewReader("extends: imperial\n"))
	assert.ErrorIs(t, err, catalog.ErrUnknownCatalog)

	_, err = catalog.LoadYAML(strings.NewReader("unitz: []\n"))
	assert.Error(t, err)

	_, err = catalog.LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteYAML_LoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, catalog.WriteYAML(&buf, catalog.Declarations()))

	path := filepath.Join(t.TempDir(), "si.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	back, err := catalog.LoadYAMLFile(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(catalog.Declarations(), back))
}
