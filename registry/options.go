// SPDX-License-Identifier: MIT

// Package registry: functional configuration.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions resolver.

package registry

import (
	"math"

	"github.com/go-logr/logr"
)

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the tolerance used by approximate quantity comparisons.
	DefaultEpsilon = 1e-9

	// DefaultAutoMatrix puts every unit of a dimension into that dimension's
	// pairwise conversion matrix, whether or not a MatrixDecl lists it.
	DefaultAutoMatrix = true

	// DefaultFusedMulAdd lets MulAdd use a single-rounding fused step when the
	// value type supports it.
	DefaultFusedMulAdd = true
)

const (
	panicEpsilonInvalid = "registry: WithEpsilon: eps must be finite, non-negative"
	panicAngleInvalid   = "registry: WithAngleDimension: name must not be empty"
)

// ---------- Option type ----------

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger      logr.Logger
	eps         float64
	angle       string // "" → the dimensionless vector
	autoMatrix  bool
	fusedMulAdd bool
}

// WithLogger routes build diagnostics to l. V(1) carries per-declaration
// detail; the build summary is logged at V(0).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithEpsilon sets the default tolerance for approximate comparisons.
// Panics when eps is NaN, infinite or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAngleDimension designates the named dimension as plane angle, the
// dimension trigonometric functions accept. Without it the dimensionless
// vector plays that role (radian convention).
// Panics on an empty name; an undeclared name fails Build with ErrUnknownDimension.
func WithAngleDimension(name string) Option {
	if name == "" {
		panic(panicAngleInvalid)
	}

	return func(o *Options) { o.angle = name }
}

// WithAutoMatrix controls whether units missing from every MatrixDecl still
// join their dimension's matrix. With auto=false such units convert only to
// and from their base unit.
func WithAutoMatrix(auto bool) Option {
	return func(o *Options) { o.autoMatrix = auto }
}

// WithFusedMulAdd enables or disables the fused multiply-add path.
func WithFusedMulAdd(fused bool) Option {
	return func(o *Options) { o.fusedMulAdd = fused }
}

// gatherOptions applies setters on top of the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:      logr.Discard(),
		eps:         DefaultEpsilon,
		autoMatrix:  DefaultAutoMatrix,
		fusedMulAdd: DefaultFusedMulAdd,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
