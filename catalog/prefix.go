// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvunits/registry"
)

// Prefix is a decimal SI prefix or an IEC binary prefix.
type Prefix struct {
	Name   string
	Symbol string
	Factor float64
}

// siPrefixes lists the SI prefixes from quetta down to quecto.
var siPrefixes = []Prefix{
	{"quetta", "Q", 1e30},
	{"ronna", "R", 1e27},
	{"yotta", "Y", 1e24},
	{"zetta", "Z", 1e21},
	{"exa", "E", 1e18},
	{"peta", "P", 1e15},
	{"tera", "T", 1e12},
	{"giga", "G", 1e9},
	{"mega", "M", 1e6},
	{"kilo", "k", 1e3},
	{"hecto", "h", 1e2},
	{"deca", "da", 1e1},
	{"deci", "d", 1e-1},
	{"centi", "c", 1e-2},
	{"milli", "m", 1e-3},
	{"micro", "µ", 1e-6},
	{"nano", "n", 1e-9},
	{"pico", "p", 1e-12},
	{"femto", "f", 1e-15},
	{"atto", "a", 1e-18},
	{"zepto", "z", 1e-21},
	{"yocto", "y", 1e-24},
	{"ronto", "r", 1e-27},
	{"quecto", "q", 1e-30},
}

// binaryPrefixes lists the IEC binary prefixes, used with information units.
var binaryPrefixes = []Prefix{
	{"yobi", "Yi", 1 << 80},
	{"zebi", "Zi", 1 << 70},
	{"exbi", "Ei", 1 << 60},
	{"pebi", "Pi", 1 << 50},
	{"tebi", "Ti", 1 << 40},
	{"gibi", "Gi", 1 << 30},
	{"mebi", "Mi", 1 << 20},
	{"kibi", "Ki", 1 << 10},
}

// SIPrefixes returns the SI prefixes, largest first.
func SIPrefixes() []Prefix {
	return append([]Prefix(nil), siPrefixes...)
}

// BinaryPrefixes returns the IEC binary prefixes, largest first.
func BinaryPrefixes() []Prefix {
	return append([]Prefix(nil), binaryPrefixes...)
}

// LookupPrefix finds an SI or binary prefix by name ("kilo", "kibi") or
// symbol ("k", "Ki"). "u" is accepted for micro.
func LookupPrefix(s string) (Prefix, bool) {
	if s == "u" {
		s = "µ"
	}
	for _, table := range [][]Prefix{siPrefixes, binaryPrefixes} {
		for _, p := range table {
			if p.Symbol == s || p.Name == s {
				return p, true
			}
		}
	}

	return Prefix{}, false
}

// Prefixed returns the declaration of p applied to u: kilo + meter →
// kilometer (km), scale multiplied by the factor. The result is never a base.
// Errors: ErrPrefixedOffset when u has an offset.
func Prefixed(u registry.UnitDecl, p Prefix) (registry.UnitDecl, error) {
	if u.Offset != 0 {
		return registry.UnitDecl{}, fmt.Errorf("Prefixed(%s, %s): %w", u.Name, p.Name, ErrPrefixedOffset)
	}
	scale := u.Scale
	if scale == 0 && u.Base {
		scale = 1
	}
	symbol := u.Symbol
	if symbol == "" {
		symbol = u.Name
	}

	return registry.UnitDecl{
		Name:      p.Name + u.Name,
		Symbol:    p.Symbol + symbol,
		Dimension: u.Dimension,
		Scale:     p.Factor * scale,
	}, nil
}
