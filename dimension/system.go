// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"strings"
)

// Base is one orthogonal base dimension of a System.
type Base struct {
	Name   string // e.g. "length"
	Symbol string // e.g. "L"
}

// System is an ordered set of base dimensions. Exponent i of every Dimension
// built by the System refers to Bases[i].
type System struct {
	name  string
	bases []Base
}

// NewSystem validates and returns a System over the given bases.
// Errors: ErrEmptySystem when bases is empty, ErrDuplicateBase when two bases
// share a name or a symbol.
// Complexity: O(N).
func NewSystem(name string, bases ...Base) (System, error) {
	if len(bases) == 0 {
		return System{}, fmt.Errorf("NewSystem(%q): %w", name, ErrEmptySystem)
	}
	seen := make(map[string]struct{}, 2*len(bases))
	for _, b := range bases {
		for _, key := range []string{"n:" + b.Name, "s:" + b.Symbol} {
			if _, dup := seen[key]; dup {
				return System{}, fmt.Errorf("NewSystem(%q): %q: %w", name, b.Name, ErrDuplicateBase)
			}
			seen[key] = struct{}{}
		}
	}
	cp := make([]Base, len(bases))
	copy(cp, bases)

	return System{name: name, bases: cp}, nil
}

// SI returns the seven-base International System of Quantities.
func SI() System {
	s, _ := NewSystem("SI",
		Base{Name: "length", Symbol: "L"},
		Base{Name: "mass", Symbol: "M"},
		Base{Name: "time", Symbol: "T"},
		Base{Name: "current", Symbol: "I"},
		Base{Name: "temperature", Symbol: "Θ"},
		Base{Name: "amount", Symbol: "N"},
		Base{Name: "luminosity", Symbol: "J"},
	)

	return s
}

// Name returns the system name.
func (s System) Name() string { return s.name }

// Rank returns the number of base dimensions.
func (s System) Rank() int { return len(s.bases) }

// Bases returns a copy of the base dimensions in exponent order.
func (s System) Bases() []Base {
	out := make([]Base, len(s.bases))
	copy(out, s.bases)

	return out
}

// New builds a Dimension from exactly Rank() exponents.
// Returns ErrBadRank when the count differs.
func (s System) New(exps ...int) (Dimension, error) {
	if len(exps) != len(s.bases) {
		return Dimension{}, fmt.Errorf("%s.New: got %d exponents, want %d: %w", s.name, len(exps), len(s.bases), ErrBadRank)
	}

	return FromExponents(exps), nil
}

// Dimensionless returns the zero vector of this system.
func (s System) Dimensionless() Dimension {
	return Dimension{exps: make([]int, len(s.bases))}
}

// BaseDimension returns the unit vector for base i (e.g. i=0 → L in SI).
// Returns ErrBadRank for an index outside [0, Rank()).
func (s System) BaseDimension(i int) (Dimension, error) {
	if i < 0 || i >= len(s.bases) {
		return Dimension{}, fmt.Errorf("%s.BaseDimension(%d): %w", s.name, i, ErrBadRank)
	}
	d := s.Dimensionless()
	d.exps[i] = 1

	return d, nil
}

// Format renders d with base symbols, e.g. "L·T^-1"; the zero vector renders
// as "1". A rank mismatch falls back to d.String().
func (s System) Format(d Dimension) string {
	if d.Rank() != len(s.bases) {
		return d.String()
	}
	var parts []string
	for i, e := range d.exps {
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, s.bases[i].Symbol)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", s.bases[i].Symbol, e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "·")
}
