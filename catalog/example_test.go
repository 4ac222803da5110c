// SPDX-License-Identifier: MIT

package catalog_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvunits/catalog"
)

// ExampleSI converts with the built-in catalog.
func ExampleSI() {
	reg := catalog.SI()
	f, _ := reg.Convert(reg.MustUnit("°C"), reg.MustUnit("°F"), 100)
	km, _ := reg.Convert(reg.MustUnit("m"), reg.MustUnit("km"), 1500)
	fmt.Printf("%.2f %g\n", f, km)
	// Output:
	// 212.00 1.5
}

// ExampleLoadYAML extends the SI catalog with one unit.
func ExampleLoadYAML() {
	doc := `
extends: SI
units:
  - name: furlong
    symbol: fur
    dimension: length
    scale: 201.168
`
	c, err := catalog.LoadYAML(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	reg, err := c.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := reg.Convert(reg.MustUnit("mi"), reg.MustUnit("fur"), 1)
	fmt.Printf("%.3f\n", v)
	// Output:
	// 8.000
}
