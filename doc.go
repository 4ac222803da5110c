// Package lvunits is a dimension-checked quantity and unit-conversion engine:
// declare dimensions and units once, then compute with values that carry their
// units and refuse dimensionally meaningless operations.
//
// 🚀 What is lvunits?
//
//	A small, pure-Go library that brings together:
//		• Dimension algebra: exponent vectors over a base system (SI: L M T I Θ N J)
//		• Units: affine rules to a base unit (scale, offset), formal derived units
//		• A conversion registry: built once, read-only, safe for concurrent use
//		• Quantities: arithmetic, identities and the float numeric tower, generic
//		  over float32/float64
//		• A built-in SI catalog with SI and binary prefixes, and a YAML format for your own
//
// ✨ Why choose lvunits?
//
//   - Conversions go through one hub per dimension, so two paths can never disagree
//   - Offset scales (°C, °F) are handled explicitly, never silently
//   - Every failure is a sentinel error you can match with errors.Is
//   - Logging through logr: plug in zap, funcr, or nothing at all
//
// Packages:
//
//	dimension/     — System, Dimension, Mul/Div/Pow/Root exponent algebra
//	unit/          — Rule (scale, offset), Unit, Product/Quotient/Power/Root
//	registry/      — Builder (declarations) → Registry (built conversion catalog)
//	quantity/      — Quantity[V]: Add, Mul, Root, MulAdd, Sin, Exp, Zero, One, …
//	catalog/       — SI declarations, SI and binary prefixes, YAML catalogs
//	cmd/unitconv/  — command-line converter
//
// Quick example:
//
//	reg := catalog.SI()
//	t := quantity.MustNew(reg, 100.0, reg.MustUnit("°C"))
//	f, _ := t.In(reg.MustUnit("°F"))   // 212 °F
//
//	go get github.com/katalvlaran/lvunits
package lvunits
