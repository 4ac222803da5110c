// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// Builder collects declarations during the setup phase and turns them into a
// Registry exactly once.
//
// mu guards the declaration slices and the frozen flag; once guards the build.
type Builder struct {
	mu     sync.Mutex
	once   sync.Once
	frozen bool

	sys  dimension.System
	opts Options

	dims     []DimensionDecl
	units    []UnitDecl
	matrices []MatrixDecl

	reg *Registry
	err error
}

// NewBuilder returns an empty Builder over the given base-dimension System.
// Complexity: O(k) for k options.
func NewBuilder(sys dimension.System, opts ...Option) *Builder {
	return &Builder{sys: sys, opts: gatherOptions(opts...)}
}

// DeclareDimension records a named dimension.
// Errors: ErrFrozen after Build. Content is validated by Build.
func (b *Builder) DeclareDimension(d DimensionDecl) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return fmt.Errorf("DeclareDimension(%q): %w", d.Name, ErrFrozen)
	}
	d.Exponents = append([]int(nil), d.Exponents...)
	b.dims = append(b.dims, d)

	return nil
}

// DeclareUnit records a unit declaration.
// Errors: ErrFrozen after Build. Content is validated by Build.
func (b *Builder) DeclareUnit(u UnitDecl) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return fmt.Errorf("DeclareUnit(%q): %w", u.Name, ErrFrozen)
	}
	b.units = append(b.units, u)

	return nil
}

// DeclareMatrix records a matrix declaration.
// Errors: ErrFrozen after Build. Content is validated by Build.
func (b *Builder) DeclareMatrix(m MatrixDecl) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return fmt.Errorf("DeclareMatrix(%q): %w", m.Base, ErrFrozen)
	}
	m.Units = append([]string(nil), m.Units...)
	b.matrices = append(b.matrices, m)

	return nil
}

// Build validates all declarations and produces the read-only Registry.
// Implementation:
//   - Stage 1: freeze the builder (later declarations fail with ErrFrozen).
//   - Stage 2: validate dimensions, units, base units and matrices.
//   - Stage 3: build the per-dimension pairwise conversion tables.
//
// Behavior highlights:
//   - Idempotent: runs once; every call returns the same result.
//   - A failure is permanent for this Builder and never yields a Registry.
//
// Complexity: O(D + U + Σ n_d²) for D dimensions, U units and n_d units per dimension.
func (b *Builder) Build() (*Registry, error) {
	b.once.Do(func() {
		b.mu.Lock()
		b.frozen = true
		dims, units, matrices := b.dims, b.units, b.matrices
		b.mu.Unlock()

		log := b.opts.logger
		b.reg, b.err = build(b.sys, b.opts, dims, units, matrices)
		if b.err != nil {
			log.Error(b.err, "conversion registry build failed", "system", b.sys.Name())

			return
		}
		log.Info("conversion registry built",
			"system", b.sys.Name(),
			"dimensions", len(b.reg.dimByName),
			"units", len(b.reg.units),
			"pairs", b.reg.pairCount())
	})

	return b.reg, b.err
}

// build is the pure validation + table construction behind Build.
func build(sys dimension.System, opts Options, dims []DimensionDecl, units []UnitDecl, matrices []MatrixDecl) (*Registry, error) {
	log := opts.logger.V(1)
	r := &Registry{
		sys:       sys,
		opts:      opts,
		dimByName: make(map[string]dimension.Dimension, len(dims)),
		dimByKey:  make(map[string]string, len(dims)),
		units:     make(map[string]unit.Unit, len(units)),
		symbols:   make(map[string]string, len(units)),
		byDim:     make(map[string][]unit.Unit, len(dims)),
		base:      make(map[string]unit.Unit, len(dims)),
		matrix:    make(map[string]map[pairKey]Conversion, len(dims)),
		inMatrix:  make(map[string]struct{}, len(units)),
	}
	var errs []error

	// Stage 2a: dimensions.
	for _, d := range dims {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("dimension %v: empty name: %w", d.Exponents, ErrInvalidDeclaration))
			continue
		}
		vec, err := sys.New(d.Exponents...)
		if err != nil {
			errs = append(errs, fmt.Errorf("dimension %q: %w", d.Name, err))
			continue
		}
		if _, dup := r.dimByName[d.Name]; dup {
			errs = append(errs, fmt.Errorf("dimension %q: %w", d.Name, ErrDuplicateDimension))
			continue
		}
		if other, dup := r.dimByKey[vec.Key()]; dup {
			errs = append(errs, fmt.Errorf("dimension %q: same vector as %q: %w", d.Name, other, ErrDuplicateDimension))
			continue
		}
		r.dimByName[d.Name] = vec
		r.dimByKey[vec.Key()] = d.Name
		log.Info("declared dimension", "dimension", d.Name, "vector", sys.Format(vec))
	}

	// Stage 2b: units and base units.
	for _, decl := range units {
		u, err := r.addUnit(decl)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Info("declared unit", "unit", u.Name(), "symbol", u.Symbol(),
			"dimension", decl.Dimension, "scale", u.Scale(), "offset", u.Offset(), "base", decl.Base)
	}
	for name, vec := range r.dimByName {
		if _, ok := r.base[vec.Key()]; !ok {
			errs = append(errs, fmt.Errorf("dimension %q: %w", name, ErrMissingBase))
		}
	}

	// Stage 2c: angle designation.
	r.angle = sys.Dimensionless()
	if opts.angle != "" {
		vec, ok := r.dimByName[opts.angle]
		if !ok {
			errs = append(errs, fmt.Errorf("angle dimension %q: %w", opts.angle, ErrUnknownDimension))
		}
		r.angle = vec
	}

	// Stage 2d: matrices.
	members, err := r.matrixMembers(matrices)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Stage 3: pairwise tables.
	for key, set := range members {
		table := r.matrix[key]
		if table == nil {
			table = make(map[pairKey]Conversion)
			r.matrix[key] = table
		}
		for _, u := range set {
			r.inMatrix[u.Name()] = struct{}{}
		}
		for _, from := range set {
			for _, to := range set {
				table[pairKey{from.Name(), to.Name()}] = Conversion{From: from, To: to}
			}
		}
	}
	// Every unit always converts to and from its own base unit.
	for key, list := range r.byDim {
		table := r.matrix[key]
		if table == nil {
			table = make(map[pairKey]Conversion)
			r.matrix[key] = table
		}
		baseUnit := r.base[key]
		for _, u := range list {
			table[pairKey{u.Name(), baseUnit.Name()}] = Conversion{From: u, To: baseUnit}
			table[pairKey{baseUnit.Name(), u.Name()}] = Conversion{From: baseUnit, To: u}
			table[pairKey{u.Name(), u.Name()}] = Conversion{From: u, To: u}
		}
	}
	if d, ok := r.base[sys.Dimensionless().Key()]; ok {
		r.dimensionless = d
	}

	return r, nil
}

// addUnit validates one declaration and indexes it.
func (r *Registry) addUnit(decl UnitDecl) (unit.Unit, error) {
	if decl.Name == "" {
		return unit.Unit{}, fmt.Errorf("unit with symbol %q: empty name: %w", decl.Symbol, ErrInvalidDeclaration)
	}
	vec, ok := r.dimByName[decl.Dimension]
	if !ok {
		return unit.Unit{}, fmt.Errorf("unit %q: dimension %q: %w", decl.Name, decl.Dimension, ErrUnknownDimension)
	}
	scale := decl.Scale
	if decl.Base && scale == 0 {
		scale = 1
	}
	u, err := unit.New(decl.Name, decl.Symbol, vec, unit.Affine(scale, decl.Offset))
	if err != nil {
		return unit.Unit{}, err
	}
	if _, dup := r.units[u.Name()]; dup {
		return unit.Unit{}, fmt.Errorf("unit %q: name: %w", u.Name(), ErrDuplicateUnit)
	}
	if _, dup := r.symbols[u.Symbol()]; dup {
		return unit.Unit{}, fmt.Errorf("unit %q: symbol %q: %w", u.Name(), u.Symbol(), ErrDuplicateUnit)
	}
	key := vec.Key()
	if decl.Base {
		if !u.Rule().IsIdentity() {
			return unit.Unit{}, fmt.Errorf("unit %q: rule %+v: %w", u.Name(), u.Rule(), ErrInvalidBase)
		}
		if prev, dup := r.base[key]; dup {
			return unit.Unit{}, fmt.Errorf("unit %q: dimension %q already has base %q: %w", u.Name(), decl.Dimension, prev.Name(), ErrMultipleBase)
		}
		r.base[key] = u
	}
	r.units[u.Name()] = u
	r.symbols[u.Symbol()] = u.Name()
	r.byDim[key] = append(r.byDim[key], u)

	return u, nil
}

// matrixMembers validates matrix declarations and returns, per dimension key,
// the units that take part in pairwise conversion.
func (r *Registry) matrixMembers(matrices []MatrixDecl) (map[string][]unit.Unit, error) {
	members := make(map[string][]unit.Unit)
	seen := make(map[string]struct{})
	add := func(key string, u unit.Unit) {
		if _, ok := seen[u.Name()]; ok {
			return
		}
		seen[u.Name()] = struct{}{}
		members[key] = append(members[key], u)
	}

	var errs []error
	for _, m := range matrices {
		base, ok := r.units[m.Base]
		if !ok {
			errs = append(errs, fmt.Errorf("matrix %q: base: %w", m.Base, ErrUnitNotRegistered))
			continue
		}
		key := base.Dimension().Key()
		if b := r.base[key]; b.Name() != base.Name() {
			errs = append(errs, fmt.Errorf("matrix %q: not the base of its dimension: %w", m.Base, ErrInvalidBase))
			continue
		}
		add(key, base)
		for _, name := range m.Units {
			u, ok := r.units[name]
			if !ok {
				errs = append(errs, fmt.Errorf("matrix %q: member %q: %w", m.Base, name, ErrUnitNotRegistered))
				continue
			}
			if u.Dimension().Key() != key {
				errs = append(errs, fmt.Errorf("matrix %q: member %q: %w", m.Base, name, ErrMatrixMismatch))
				continue
			}
			add(key, u)
		}
	}

	for key, list := range r.byDim {
		for _, u := range list {
			if _, ok := seen[u.Name()]; ok {
				continue
			}
			if !r.opts.autoMatrix {
				r.opts.logger.V(1).Info("unit outside every matrix converts via its base only", "unit", u.Name())
				continue
			}
			add(key, u)
		}
	}

	return members, errors.Join(errs...)
}
