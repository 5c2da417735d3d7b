// SPDX-License-Identifier: MIT

package dens

import (
	"fmt"

	"github.com/katalvlaran/lvstats/matrix"
)

// Param is one distribution parameter as seen by the bulk engine: either a
// single value shared by every element, or one value per input element
// matched by row-major linear index.
//
// The zero Param is Scalar(0).
type Param struct {
	value      float64          // shared value (scalar mode)
	perElement bool             // true once PerElement/PerElementSlice was used
	elems      matrix.Container // per-element source (container mode)
	values     []float64        // per-element flat view (slice mode or *Dense fast path)
}

// Scalar returns a Param that broadcasts v to every element.
func Scalar(v float64) Param { return Param{value: v} }

// PerElement returns a Param reading element k of c for input element k.
// c must hold exactly as many elements as the input; its shape may differ.
// c is read, never written, and must not be mutated during evaluation.
func PerElement(c matrix.Container) Param {
	p := Param{perElement: true, elems: c}
	if d, ok := c.(*matrix.Dense); ok && d != nil {
		p.values = d.Values() // flat fast path
	}

	return p
}

// PerElementSlice returns a Param reading vs[k] for input element k.
// vs is not copied. NaN and ±Inf entries are allowed and propagate per the
// kernel's policy.
func PerElementSlice(vs []float64) Param {
	return Param{perElement: true, values: vs}
}

// IsScalar reports whether p broadcasts a single value.
func (p Param) IsScalar() bool { return !p.perElement }

// Value returns the shared value of a scalar Param (0 for per-element).
func (p Param) Value() float64 { return p.value }

// Len returns the per-element count, or -1 for a scalar Param.
func (p Param) Len() int {
	switch {
	case !p.perElement:
		return -1
	case p.values != nil:
		return len(p.values)
	case p.elems != nil:
		return p.elems.Len()
	default:
		return 0
	}
}

// check validates p against an input of n elements.
func (p Param) check(name string, n int) error {
	if !p.perElement {
		return nil
	}
	if p.values == nil {
		if err := matrix.ValidateContainer(p.elems); err != nil {
			return fmt.Errorf("%s: %w: %w", name, ErrNilInput, err)
		}
	}
	if got := p.Len(); got != n {
		return fmt.Errorf("%s has %d elements, input has %d: %w: %w",
			name, got, n, ErrShapeMismatch, matrix.ErrDimensionMismatch)
	}

	return nil
}

// at returns the parameter value for linear index k.
// Callers validate with check first; k is then always in range.
func (p Param) at(k int) (float64, error) {
	if !p.perElement {
		return p.value, nil
	}
	if p.values != nil {
		return p.values[k], nil
	}

	return p.elems.AtIndex(k)
}
