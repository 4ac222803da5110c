// SPDX-License-Identifier: MIT

// Package dimension: result-dimension rules for arithmetic operators.
// All functions are pure; they fail only on rank mismatch, on unequal
// operands of Add/Sub, and on roots that would leave a fractional exponent.

package dimension

import "fmt"

// Add returns the dimension of a+b. Both operands must be equal.
// Errors: ErrDimensionMismatch.
func Add(a, b Dimension) (Dimension, error) {
	if !a.Equal(b) {
		return Dimension{}, dimensionErrorf("Add", a, b, ErrDimensionMismatch)
	}

	return a, nil
}

// Sub returns the dimension of a-b. Both operands must be equal.
// Errors: ErrDimensionMismatch.
func Sub(a, b Dimension) (Dimension, error) {
	if !a.Equal(b) {
		return Dimension{}, dimensionErrorf("Sub", a, b, ErrDimensionMismatch)
	}

	return a, nil
}

// Mul returns the dimension of a*b: the elementwise sum of exponents.
// Errors: ErrDimensionMismatch when ranks differ.
// Complexity: O(N).
func Mul(a, b Dimension) (Dimension, error) {
	if a.Rank() != b.Rank() {
		return Dimension{}, dimensionErrorf("Mul", a, b, ErrDimensionMismatch)
	}
	out := make([]int, len(a.exps))
	for i := range out {
		out[i] = a.exps[i] + b.exps[i]
	}

	return Dimension{exps: out}, nil
}

// Div returns the dimension of a/b: the elementwise difference a-b.
// Errors: ErrDimensionMismatch when ranks differ.
// Complexity: O(N).
func Div(a, b Dimension) (Dimension, error) {
	if a.Rank() != b.Rank() {
		return Dimension{}, dimensionErrorf("Div", a, b, ErrDimensionMismatch)
	}
	out := make([]int, len(a.exps))
	for i := range out {
		out[i] = a.exps[i] - b.exps[i]
	}

	return Dimension{exps: out}, nil
}

// Pow returns the dimension of a^n: every exponent multiplied by n.
// Pow(a, 0) is the dimensionless vector of a's rank; Pow(a, -1) inverts.
func Pow(a Dimension, n int) Dimension {
	out := make([]int, len(a.exps))
	for i, e := range a.exps {
		out[i] = e * n
	}

	return Dimension{exps: out}
}

// Inverse returns the dimension of 1/a.
func Inverse(a Dimension) Dimension { return Pow(a, -1) }

// Root returns the dimension of the n-th root of a.
// Implementation:
//   - Stage 1: reject n < 2 with ErrBadRootIndex.
//   - Stage 2: every exponent must be divisible by n, else ErrNonIntegerRootExponent.
//
// Complexity: O(N).
func Root(a Dimension, n int) (Dimension, error) {
	if n < 2 {
		return Dimension{}, fmt.Errorf("Root(%s, %d): %w", a, n, ErrBadRootIndex)
	}
	out := make([]int, len(a.exps))
	for i, e := range a.exps {
		if e%n != 0 {
			return Dimension{}, fmt.Errorf("Root(%s, %d): exponent %d of base %d: %w", a, n, e, i, ErrNonIntegerRootExponent)
		}
		out[i] = e / n
	}

	return Dimension{exps: out}, nil
}

// PowRational returns the dimension of a^(p/q). q must be positive; every
// resulting exponent e*p/q must be an integer.
// Errors: ErrBadRootIndex for q <= 0, ErrNonIntegerRootExponent otherwise.
func PowRational(a Dimension, p, q int) (Dimension, error) {
	if q <= 0 {
		return Dimension{}, fmt.Errorf("PowRational(%s, %d/%d): %w", a, p, q, ErrBadRootIndex)
	}
	out := make([]int, len(a.exps))
	for i, e := range a.exps {
		num := e * p
		if num%q != 0 {
			return Dimension{}, fmt.Errorf("PowRational(%s, %d/%d): exponent %d of base %d: %w", a, p, q, e, i, ErrNonIntegerRootExponent)
		}
		out[i] = num / q
	}

	return Dimension{exps: out}, nil
}
