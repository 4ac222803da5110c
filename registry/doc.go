// Package registry builds the conversion catalog that every Quantity consults:
// which dimensions exist, which units belong to each, and how to convert
// between any two units of the same dimension.
//
// Lifecycle:
//
//	Builder  (building, single writer)  ──Build()──▶  Registry (built, read-only)
//
// The transition happens exactly once per Builder behind a sync.Once: every
// call to Build returns the same *Registry (or the same error). A failed build
// never yields a Registry; declarations after Build return ErrFrozen. Once
// built, a Registry is immutable and safe for concurrent use without locks.
//
// Star topology:
//
//	Every unit declares one affine rule towards its dimension's base unit.
//	Converting A to B always evaluates
//
//	    fromBase_B(toBase_A(v)) = ((v*scaleA + offsetA) - offsetB) / scaleB
//
//	so no pairwise table is ever hand-written and two derived paths can never
//	disagree. The pairwise "matrix" per dimension is built eagerly; each entry
//	stores both rules and lookups are O(1).
//
// Derived units produced by quantity arithmetic (m·s^-1, …) are accepted by
// Resolve and Convert without registration: their rule is relative to the
// coherent base of their dimension, which is why base units must form a
// coherent system (the base of area is the square of the base of length).
//
// Usage:
//
//	b := registry.NewBuilder(dimension.SI(), registry.WithLogger(log))
//	_ = b.DeclareDimension(registry.DimensionDecl{Name: "length", Exponents: []int{1, 0, 0, 0, 0, 0, 0}})
//	_ = b.DeclareUnit(registry.UnitDecl{Name: "meter", Symbol: "m", Dimension: "length", Base: true})
//	_ = b.DeclareUnit(registry.UnitDecl{Name: "kilometer", Symbol: "km", Dimension: "length", Scale: 1000})
//	reg, err := b.Build()
//	v, err := reg.Convert(reg.MustUnit("m"), reg.MustUnit("km"), 1500) // 1.5
package registry
