// Package quantity implements physical quantities: a numeric value paired with
// a unit drawn from a built registry.Registry, plus the arithmetic and
// numeric-tower operations whose dimensional contracts are checked at runtime.
//
// What & Why:
//
//	Quantity[V] = (value V, unit unit.Unit, registry *registry.Registry)
//
//	The dimension of a Quantity is always the dimension of its unit. Every
//	operation checks its dimensional precondition before touching the value
//	and fails with a sentinel error (ErrDimensionMismatch, ErrUnitNotRegistered,
//	ErrNonIntegerRootExponent, ErrUndefinedIdentity) instead of coercing.
//	Numeric edge cases (overflow, NaN, ±Inf) are not errors; they follow IEEE-754.
//
// Value types:
//
//	Number = ~float32 | ~float64. Conversions and transcendental functions are
//	evaluated in float64 and narrowed back to V. MulAdd is fused (single
//	rounding, math.FMA) only for 64-bit values and only while the registry was
//	built with WithFusedMulAdd(true); otherwise it multiplies then adds.
//
// Units:
//
//	Add/Sub/Rem/comparisons convert the right operand into the left operand's
//	unit. Mul/Div/Pow/Root produce formal derived units (km·h^-1, m^2) that the
//	registry maps back to a declared unit whenever one has the same rule.
//	Offset units (°C, °F) are first moved to their linear base unit, because
//	offsets do not compose under multiplication.
//
// Identities:
//
//	Zero(reg, u)   additive identity, defined for linear units only: 0 m ≡ 0 km.
//	Origin(reg, u) the numeric zero of any unit; 0 °C is not 0 °F.
//	One(reg, u)    multiplicative identity, defined for the dimensionless base unit only.
//
// Angles:
//
//	Trigonometric functions accept the registry's angle dimension
//	(dimensionless by default, radian convention) and return dimensionless
//	quantities; inverse functions return the angle dimension's base unit.
//
// Usage:
//
//	reg := catalog.SI()
//	a := quantity.MustNew(reg, 2.0, reg.MustUnit("m"))
//	b := quantity.MustNew(reg, 3.0, reg.MustUnit("m"))
//	area, _ := a.Mul(b)   // 6 m²
//	side, _ := area.Sqrt() // ≈2.449 m
package quantity
