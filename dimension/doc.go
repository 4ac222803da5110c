// Package dimension models a physical dimension as a vector of exponents over
// a fixed set of base dimensions, and implements the algebra that derives the
// dimension of an arithmetic result.
//
// What is a Dimension?
//
//	A Dimension is an immutable tuple of exponents, one per base dimension of
//	a System. In the SI system (7 bases) velocity is
//
//	    L  M  T  I  Θ  N  J
//	    1  0 -1  0  0  0  0      →  L·T^-1
//
//	The zero vector denotes a dimensionless quantity.
//
// Algebra:
//
//   - Add / Sub   require equal operands; the result is the operand.
//   - Mul / Div   add / subtract exponents elementwise.
//   - Pow(n)      multiplies every exponent by n.
//   - Root(n)     divides every exponent by n, failing with
//     ErrNonIntegerRootExponent when any exponent is not divisible by n.
//
// The package is N-agnostic: a System may declare any number of bases, and
// every operation checks that both operands share the same rank.
//
// Usage:
//
//	sys := dimension.SI()
//	length, _ := sys.New(1, 0, 0, 0, 0, 0, 0)
//	area := dimension.Pow(length, 2)
//	side, err := dimension.Root(area, 2) // length, nil
//	_, err = dimension.Root(length, 3)   // ErrNonIntegerRootExponent
//
// All functions are pure and allocate only the result vector; Dimension values
// are safe to share across goroutines.
package dimension
