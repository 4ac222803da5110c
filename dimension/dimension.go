// SPDX-License-Identifier: MIT

package dimension

import (
	"strconv"
	"strings"
)

// Dimension is an immutable exponent vector over the bases of a System.
// The zero value has rank 0 and is only equal to other rank-0 values.
type Dimension struct {
	exps []int // never mutated after construction
}

// FromExponents copies exps into a new Dimension. It performs no rank check;
// prefer System.New when a System is at hand.
func FromExponents(exps []int) Dimension {
	cp := make([]int, len(exps))
	copy(cp, exps)

	return Dimension{exps: cp}
}

// Rank returns the number of exponents.
func (d Dimension) Rank() int { return len(d.exps) }

// Exponent returns the exponent of base i, or 0 when i is out of range.
func (d Dimension) Exponent(i int) int {
	if i < 0 || i >= len(d.exps) {
		return 0
	}

	return d.exps[i]
}

// Exponents returns a copy of the exponent vector.
func (d Dimension) Exponents() []int {
	out := make([]int, len(d.exps))
	copy(out, d.exps)

	return out
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	for _, e := range d.exps {
		if e != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact elementwise equality. Dimensions of different rank are
// never equal.
// Complexity: O(N).
func (d Dimension) Equal(o Dimension) bool {
	if len(d.exps) != len(o.exps) {
		return false
	}
	for i := range d.exps {
		if d.exps[i] != o.exps[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string usable as a map key; equal dimensions have
// equal keys.
func (d Dimension) Key() string {
	var b strings.Builder
	for i, e := range d.exps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}

// String renders the raw vector, e.g. "[1 0 -2]".
func (d Dimension) String() string {
	return "[" + strings.ReplaceAll(d.Key(), ",", " ") + "]"
}
