// SPDX-License-Identifier: MIT

package dens

// Float is the set of real number representations the scalar kernels accept.
// Transcendental calls run in float64; results are narrowed to T on return.
type Float interface {
	~float32 | ~float64
}

// Kernel2 is the scalar kernel of a two-parameter family in float64:
// density (or log-density when logForm) of x under parameters (a, b).
// Kernels must be pure and allocation-free.
type Kernel2 func(x, a, b float64, logForm bool) float64
