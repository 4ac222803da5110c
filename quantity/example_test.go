// SPDX-License-Identifier: MIT

package quantity_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/quantity"
)

// ExampleQuantity_Mul multiplies two lengths into an area.
func ExampleQuantity_Mul() {
	reg := catalog.SI()
	a := quantity.MustNew(reg, 2.0, reg.MustUnit("m"))
	b := quantity.MustNew(reg, 3.0, reg.MustUnit("m"))

	area, _ := a.Mul(b)
	fmt.Println(area, reg.System().Format(area.Dimension()))

	_, err := a.Add(quantity.MustNew(reg, 1.0, reg.MustUnit("s")))
	fmt.Println(errors.Is(err, quantity.ErrDimensionMismatch))
	// Output:
	// 6 m² L^2
	// true
}

// ExampleQuantity_Root takes the cube root of a volume.
func ExampleQuantity_Root() {
	reg := catalog.SI()
	v := quantity.MustNew(reg, 8.0, reg.MustUnit("m³"))
	side, _ := v.Root(3)
	fmt.Println(side)

	_, err := side.Root(3)
	fmt.Println(errors.Is(err, quantity.ErrNonIntegerRootExponent))
	// Output:
	// 2 m
	// true
}

// ExampleZero contrasts the additive identity with the numeric origin.
func ExampleZero() {
	reg := catalog.SI()
	_, err := quantity.Zero[float64](reg, reg.MustUnit("°C"))
	fmt.Println(errors.Is(err, quantity.ErrUndefinedIdentity))

	o, _ := quantity.Origin[float64](reg, reg.MustUnit("°C"))
	f, _ := o.In(reg.MustUnit("°F"))
	fmt.Printf("%.0f %s\n", f.Value(), f.Unit())
	// Output:
	// true
	// 32 °F
}
