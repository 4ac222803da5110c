// SPDX-License-Identifier: MIT

package catalog

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvunits/registry"
)

// Dimension names of the built-in catalog.
const (
	Dimensionless     = "dimensionless"
	Length            = "length"
	Mass              = "mass"
	Time              = "time"
	Current           = "current"
	Temperature       = "temperature"
	Amount            = "amount"
	LuminousIntensity = "luminous intensity"
	Area              = "area"
	Volume            = "volume"
	Velocity          = "velocity"
	Acceleration      = "acceleration"
	Force             = "force"
	Energy            = "energy"
	Power             = "power"
	Frequency         = "frequency"
	Pressure          = "pressure"
	Charge            = "charge"
	Voltage           = "voltage"
)

// dims over L M T I Θ N J.
var siDimensions = []DimensionSpec{
	{Dimensionless, []int{0, 0, 0, 0, 0, 0, 0}},
	{Length, []int{1, 0, 0, 0, 0, 0, 0}},
	{Mass, []int{0, 1, 0, 0, 0, 0, 0}},
	{Time, []int{0, 0, 1, 0, 0, 0, 0}},
	{Current, []int{0, 0, 0, 1, 0, 0, 0}},
	{Temperature, []int{0, 0, 0, 0, 1, 0, 0}},
	{Amount, []int{0, 0, 0, 0, 0, 1, 0}},
	{LuminousIntensity, []int{0, 0, 0, 0, 0, 0, 1}},
	{Area, []int{2, 0, 0, 0, 0, 0, 0}},
	{Volume, []int{3, 0, 0, 0, 0, 0, 0}},
	{Velocity, []int{1, 0, -1, 0, 0, 0, 0}},
	{Acceleration, []int{1, 0, -2, 0, 0, 0, 0}},
	{Force, []int{1, 1, -2, 0, 0, 0, 0}},
	{Energy, []int{2, 1, -2, 0, 0, 0, 0}},
	{Power, []int{2, 1, -3, 0, 0, 0, 0}},
	{Frequency, []int{0, 0, -1, 0, 0, 0, 0}},
	{Pressure, []int{-1, 1, -2, 0, 0, 0, 0}},
	{Charge, []int{0, 0, 1, 1, 0, 0, 0}},
	{Voltage, []int{2, 1, -3, -1, 0, 0, 0}},
}

const (
	fahrenheitScale = 5.0 / 9.0
	standardGravity = 9.80665
	poundMass       = 0.45359237
	calorie         = 4.184
)

var siUnits = []UnitSpec{
	// Dimensionless ratios and plane angle (radian convention).
	{Name: "unitless", Symbol: "1", Dimension: Dimensionless, Base: true},
	{Name: "radian", Symbol: "rad", Dimension: Dimensionless, Scale: 1, Prefixes: []string{"m", "µ"}},
	{Name: "degree", Symbol: "°", Dimension: Dimensionless, Scale: math.Pi / 180},
	{Name: "arcminute", Symbol: "′", Dimension: Dimensionless, Scale: math.Pi / 10800},
	{Name: "arcsecond", Symbol: "″", Dimension: Dimensionless, Scale: math.Pi / 648000},
	{Name: "gradian", Symbol: "gon", Dimension: Dimensionless, Scale: math.Pi / 200},
	{Name: "turn", Symbol: "tr", Dimension: Dimensionless, Scale: 2 * math.Pi},
	{Name: "percent", Symbol: "%", Dimension: Dimensionless, Scale: 1e-2},
	{Name: "permille", Symbol: "‰", Dimension: Dimensionless, Scale: 1e-3},
	{Name: "part per million", Symbol: "ppm", Dimension: Dimensionless, Scale: 1e-6},

	// Length.
	{Name: "meter", Symbol: "m", Dimension: Length, Base: true,
		Prefixes: []string{"k", "h", "da", "d", "c", "m", "µ", "n", "p", "f"}},
	{Name: "ångström", Symbol: "Å", Dimension: Length, Scale: 1e-10},
	{Name: "inch", Symbol: "in", Dimension: Length, Scale: 0.0254},
	{Name: "foot", Symbol: "ft", Dimension: Length, Scale: 0.3048},
	{Name: "yard", Symbol: "yd", Dimension: Length, Scale: 0.9144},
	{Name: "mile", Symbol: "mi", Dimension: Length, Scale: 1609.344},
	{Name: "nautical mile", Symbol: "nmi", Dimension: Length, Scale: 1852},
	{Name: "astronomical unit", Symbol: "au", Dimension: Length, Scale: 149597870700},
	{Name: "light year", Symbol: "ly", Dimension: Length, Scale: 9460730472580800},

	// Mass.
	{Name: "kilogram", Symbol: "kg", Dimension: Mass, Base: true},
	{Name: "gram", Symbol: "g", Dimension: Mass, Scale: 1e-3, Prefixes: []string{"m", "µ", "n"}},
	{Name: "tonne", Symbol: "t", Dimension: Mass, Scale: 1e3},
	{Name: "pound", Symbol: "lb", Dimension: Mass, Scale: poundMass},
	{Name: "ounce", Symbol: "oz", Dimension: Mass, Scale: poundMass / 16},
	{Name: "stone", Symbol: "st", Dimension: Mass, Scale: poundMass * 14},

	// Time.
	{Name: "second", Symbol: "s", Dimension: Time, Base: true, Prefixes: []string{"m", "µ", "n", "p"}},
	{Name: "minute", Symbol: "min", Dimension: Time, Scale: 60},
	{Name: "hour", Symbol: "h", Dimension: Time, Scale: 3600},
	{Name: "day", Symbol: "d", Dimension: Time, Scale: 86400},
	{Name: "week", Symbol: "wk", Dimension: Time, Scale: 604800},
	{Name: "julian year", Symbol: "yr", Dimension: Time, Scale: 31557600},

	// Electric current.
	{Name: "ampere", Symbol: "A", Dimension: Current, Base: true, Prefixes: []string{"k", "m", "µ", "n"}},

	// Thermodynamic temperature.
	{Name: "kelvin", Symbol: "K", Dimension: Temperature, Base: true, Prefixes: []string{"m", "µ", "n"}},
	{Name: "celsius", Symbol: "°C", Dimension: Temperature, Scale: 1, Offset: 273.15},
	{Name: "fahrenheit", Symbol: "°F", Dimension: Temperature, Scale: fahrenheitScale, Offset: 459.67 * fahrenheitScale},
	{Name: "rankine", Symbol: "°R", Dimension: Temperature, Scale: fahrenheitScale},
	{Name: "réaumur", Symbol: "°Ré", Dimension: Temperature, Scale: 1.25, Offset: 273.15},

	// Amount of substance.
	{Name: "mole", Symbol: "mol", Dimension: Amount, Base: true, Prefixes: []string{"k", "m", "µ", "n"}},

	// Luminous intensity.
	{Name: "candela", Symbol: "cd", Dimension: LuminousIntensity, Base: true, Prefixes: []string{"m"}},

	// Area.
	{Name: "square meter", Symbol: "m²", Dimension: Area, Base: true},
	{Name: "square kilometer", Symbol: "km²", Dimension: Area, Scale: 1e6},
	{Name: "square centimeter", Symbol: "cm²", Dimension: Area, Scale: 1e-4},
	{Name: "square millimeter", Symbol: "mm²", Dimension: Area, Scale: 1e-6},
	{Name: "are", Symbol: "a", Dimension: Area, Scale: 1e2},
	{Name: "hectare", Symbol: "ha", Dimension: Area, Scale: 1e4},
	{Name: "acre", Symbol: "ac", Dimension: Area, Scale: 4046.8564224},
	{Name: "square foot", Symbol: "ft²", Dimension: Area, Scale: 0.09290304},

	// Volume.
	{Name: "cubic meter", Symbol: "m³", Dimension: Volume, Base: true},
	{Name: "cubic centimeter", Symbol: "cm³", Dimension: Volume, Scale: 1e-6},
	{Name: "liter", Symbol: "L", Dimension: Volume, Scale: 1e-3, Prefixes: []string{"h", "d", "c", "m", "µ"}},
	{Name: "us gallon", Symbol: "gal", Dimension: Volume, Scale: 3.785411784e-3},

	// Velocity.
	{Name: "meter per second", Symbol: "m/s", Dimension: Velocity, Base: true},
	{Name: "kilometer per hour", Symbol: "km/h", Dimension: Velocity, Scale: 1000.0 / 3600.0},
	{Name: "mile per hour", Symbol: "mph", Dimension: Velocity, Scale: 0.44704},
	{Name: "knot", Symbol: "kn", Dimension: Velocity, Scale: 1852.0 / 3600.0},
	{Name: "foot per second", Symbol: "ft/s", Dimension: Velocity, Scale: 0.3048},

	// Acceleration.
	{Name: "meter per second squared", Symbol: "m/s²", Dimension: Acceleration, Base: true},
	{Name: "standard gravity", Symbol: "g0", Dimension: Acceleration, Scale: standardGravity},

	// Force.
	{Name: "newton", Symbol: "N", Dimension: Force, Base: true, Prefixes: []string{"M", "k", "m"}},
	{Name: "kilogram-force", Symbol: "kgf", Dimension: Force, Scale: standardGravity},
	{Name: "pound-force", Symbol: "lbf", Dimension: Force, Scale: poundMass * standardGravity},
	{Name: "dyne", Symbol: "dyn", Dimension: Force, Scale: 1e-5},

	// Energy.
	{Name: "joule", Symbol: "J", Dimension: Energy, Base: true, Prefixes: []string{"G", "M", "k", "m"}},
	{Name: "calorie", Symbol: "cal", Dimension: Energy, Scale: calorie, Prefixes: []string{"k"}},
	{Name: "watt hour", Symbol: "Wh", Dimension: Energy, Scale: 3600, Prefixes: []string{"G", "M", "k"}},
	{Name: "electronvolt", Symbol: "eV", Dimension: Energy, Scale: 1.602176634e-19, Prefixes: []string{"G", "M", "k"}},
	{Name: "erg", Symbol: "erg", Dimension: Energy, Scale: 1e-7},
	{Name: "british thermal unit", Symbol: "BTU", Dimension: Energy, Scale: 1055.05585262},

	// Power.
	{Name: "watt", Symbol: "W", Dimension: Power, Base: true, Prefixes: []string{"G", "M", "k", "m"}},
	{Name: "horsepower", Symbol: "hp", Dimension: Power, Scale: 745.69987158227022},

	// Frequency.
	{Name: "hertz", Symbol: "Hz", Dimension: Frequency, Base: true, Prefixes: []string{"G", "M", "k"}},
	{Name: "revolution per minute", Symbol: "rpm", Dimension: Frequency, Scale: 1.0 / 60.0},

	// Pressure.
	{Name: "pascal", Symbol: "Pa", Dimension: Pressure, Base: true, Prefixes: []string{"M", "k", "h"}},
	{Name: "bar", Symbol: "bar", Dimension: Pressure, Scale: 1e5, Prefixes: []string{"m"}},
	{Name: "atmosphere", Symbol: "atm", Dimension: Pressure, Scale: 101325},
	{Name: "torr", Symbol: "Torr", Dimension: Pressure, Scale: 101325.0 / 760.0},
	{Name: "millimeter of mercury", Symbol: "mmHg", Dimension: Pressure, Scale: 133.322387415},
	{Name: "pound per square inch", Symbol: "psi", Dimension: Pressure, Scale: 6894.757293168},

	// Electric charge.
	{Name: "coulomb", Symbol: "C", Dimension: Charge, Base: true, Prefixes: []string{"m", "µ"}},
	{Name: "ampere hour", Symbol: "Ah", Dimension: Charge, Scale: 3600, Prefixes: []string{"m"}},

	// Voltage.
	{Name: "volt", Symbol: "V", Dimension: Voltage, Base: true, Prefixes: []string{"k", "m"}},
}

var siMatrices = []MatrixSpec{
	{Base: "kelvin", Units: []string{"celsius", "fahrenheit", "rankine", "réaumur"}},
	{Base: "unitless", Units: []string{"radian", "degree", "arcminute", "arcsecond", "gradian", "turn"}},
}

// Declarations returns a copy of the built-in SI catalog.
func Declarations() Catalog {
	c := Catalog{
		Dimensions: make([]DimensionSpec, len(siDimensions)),
		Units:      make([]UnitSpec, len(siUnits)),
		Matrices:   make([]MatrixSpec, len(siMatrices)),
	}
	for i, d := range siDimensions {
		c.Dimensions[i] = DimensionSpec{Name: d.Name, Exponents: append([]int(nil), d.Exponents...)}
	}
	for i, u := range siUnits {
		u.Prefixes = append([]string(nil), u.Prefixes...)
		c.Units[i] = u
	}
	for i, m := range siMatrices {
		c.Matrices[i] = MatrixSpec{Base: m.Base, Units: append([]string(nil), m.Units...)}
	}

	return c
}

// Build returns a new registry over the built-in catalog.
func Build(opts ...registry.Option) (*registry.Registry, error) {
	return Declarations().Build(opts...)
}

var si = sync.OnceValues(func() (*registry.Registry, error) { return Build() })

// SI returns the process-wide registry over the built-in catalog, built on
// first use. It panics if the built-in catalog fails to build.
func SI() *registry.Registry {
	reg, err := si()
	if err != nil {
		panic(err)
	}

	return reg
}
