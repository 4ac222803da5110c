// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/stretchr/testify/require"
)

// q builds a float64 quantity in the SI catalog unit named by symbol.
func q(t testing.TB, v float64, symbol string) quantity.Quantity[float64] {
	t.Helper()
	reg := catalog.SI()
	out, err := quantity.New(reg, v, reg.MustUnit(symbol))
	require.NoError(t, err)

	return out
}

// dim returns the vector of a named SI catalog dimension.
func dim(t testing.TB, name string) dimension.Dimension {
	t.Helper()
	d, err := catalog.SI().Dimension(name)
	require.NoError(t, err)

	return d
}

// unfused builds an SI registry whose MulAdd never fuses.
func unfused(t testing.TB) *registry.Registry {
	t.Helper()
	reg, err := catalog.Build(registry.WithFusedMulAdd(false))
	require.NoError(t, err)

	return reg
}
