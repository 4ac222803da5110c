package dimension_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
)

// ExampleRoot shows the divisibility rule for roots.
func ExampleRoot() {
	sys := dimension.SI()
	volume, _ := sys.New(3, 0, 0, 0, 0, 0, 0)

	side, _ := dimension.Root(volume, 3)
	fmt.Println(sys.Format(side))

	_, err := dimension.Root(side, 2)
	fmt.Println(errors.Is(err, dimension.ErrNonIntegerRootExponent))

	// Output:
	// L
	// true
}

// ExampleMul derives the dimension of force from mass and acceleration.
func ExampleMul() {
	sys := dimension.SI()
	mass, _ := sys.New(0, 1, 0, 0, 0, 0, 0)
	accel, _ := sys.New(1, 0, -2, 0, 0, 0, 0)

	force, _ := dimension.Mul(mass, accel)
	fmt.Println(sys.Format(force))

	// Output:
	// L·M·T^-2
}
