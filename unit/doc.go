// Package unit defines concrete units of measurement and the affine rule that
// relates each unit to the base unit of its dimension.
//
// Conversion model:
//
//	valueInBase = value*Scale + Offset
//	value       = (valueInBase - Offset) / Scale
//
// A unit with Offset == 0 is linear. Linear units compose under
// multiplication (Product, Quotient, Power, Root) into derived units whose
// scale is the product of the operand scales and whose offset is 0. Offset
// units such as degree Celsius do not compose: the derived-unit constructors
// reject them with ErrNonLinearUnit, and callers normalise to the base unit
// first.
//
// Units are plain values; they carry no registry pointer and are safe to copy
// and share.
package unit
