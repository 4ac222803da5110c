// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/registry"
)

// Catalog is a set of declarations ready to feed a registry.Builder.
// Its YAML form is documented in the package comment.
type Catalog struct {
	Extends    string          `yaml:"extends,omitempty"`
	Dimensions []DimensionSpec `yaml:"dimensions"`
	Units      []UnitSpec      `yaml:"units"`
	Matrices   []MatrixSpec    `yaml:"matrices,omitempty"`
}

// DimensionSpec declares a named dimension over the SI base dimensions
// (L, M, T, I, Θ, N, J).
type DimensionSpec struct {
	Name      string `yaml:"name"`
	Exponents []int  `yaml:"exponents,flow"`
}

// UnitSpec declares a unit; Prefixes lists SI or binary prefixes (names or
// symbols) to expand into additional units.
type UnitSpec struct {
	Name      string   `yaml:"name"`
	Symbol    string   `yaml:"symbol,omitempty"`
	Dimension string   `yaml:"dimension"`
	Scale     float64  `yaml:"scale,omitempty"`
	Offset    float64  `yaml:"offset,omitempty"`
	Base      bool     `yaml:"base,omitempty"`
	Prefixes  []string `yaml:"prefixes,omitempty,flow"`
}

// MatrixSpec lists units of one dimension converted pairwise.
type MatrixSpec struct {
	Base  string   `yaml:"base"`
	Units []string `yaml:"units,flow"`
}

// Merge returns c followed by o's declarations. Extends is taken from c.
func (c Catalog) Merge(o Catalog) Catalog {
	return Catalog{
		Extends:    c.Extends,
		Dimensions: append(append([]DimensionSpec(nil), c.Dimensions...), o.Dimensions...),
		Units:      append(append([]UnitSpec(nil), c.Units...), o.Units...),
		Matrices:   append(append([]MatrixSpec(nil), c.Matrices...), o.Matrices...),
	}
}

// Declarations expands the catalog into registry declarations, applying
// prefixes in the order they are listed.
// Errors: ErrUnknownPrefix, ErrPrefixedOffset.
func (c Catalog) Declarations() ([]registry.DimensionDecl, []registry.UnitDecl, []registry.MatrixDecl, error) {
	dims := make([]registry.DimensionDecl, 0, len(c.Dimensions))
	for _, d := range c.Dimensions {
		dims = append(dims, registry.DimensionDecl{Name: d.Name, Exponents: append([]int(nil), d.Exponents...)})
	}

	units := make([]registry.UnitDecl, 0, len(c.Units))
	for _, u := range c.Units {
		decl := registry.UnitDecl{
			Name:      u.Name,
			Symbol:    u.Symbol,
			Dimension: u.Dimension,
			Scale:     u.Scale,
			Offset:    u.Offset,
			Base:      u.Base,
		}
		units = append(units, decl)
		for _, ps := range u.Prefixes {
			p, ok := LookupPrefix(ps)
			if !ok {
				return nil, nil, nil, fmt.Errorf("unit %q: prefix %q: %w", u.Name, ps, ErrUnknownPrefix)
			}
			pd, err := Prefixed(decl, p)
			if err != nil {
				return nil, nil, nil, err
			}
			units = append(units, pd)
		}
	}

	matrices := make([]registry.MatrixDecl, 0, len(c.Matrices))
	for _, m := range c.Matrices {
		matrices = append(matrices, registry.MatrixDecl{Base: m.Base, Units: append([]string(nil), m.Units...)})
	}

	return dims, units, matrices, nil
}

// Build declares the catalog on a fresh SI builder and builds it.
// Errors: expansion errors, then every registry build error.
func (c Catalog) Build(opts ...registry.Option) (*registry.Registry, error) {
	dims, units, matrices, err := c.Declarations()
	if err != nil {
		return nil, err
	}
	b := registry.NewBuilder(dimension.SI(), opts...)
	for _, d := range dims {
		if err := b.DeclareDimension(d); err != nil {
			return nil, err
		}
	}
	for _, u := range units {
		if err := b.DeclareUnit(u); err != nil {
			return nil, err
		}
	}
	for _, m := range matrices {
		if err := b.DeclareMatrix(m); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
