// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// CloneMatrix returns a structural clone of m (same concrete type).
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a zero container with the same shape and backend as c.
// Complexity: O(1) alloc + O(r*c) zeroing.
//
// AI-Hints: Useful to preallocate output buffers for kernels.
func ZerosLike(c Container) (Container, error) {
	if err := ValidateContainer(c); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return c.Like()
}

// ---------- Element-wise (thin wrappers → ew*) ----------

// Map returns a fresh container out with out[k] = f(k, X[k]) for every
// row-major index k. X is not mutated; out has X's shape and backend.
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// AI-Hints:
//   - This is the building block of every bulk kernel in dens.
func Map(X Container, f func(k int, v float64) float64) (Container, error) {
	return ewMap(X, f)
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// Policy: If lo > hi, bounds are swapped. NaN bounds are rejected.
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// AI-Hints:
//   - Clip(logDensities, -745, math.Inf(1)) keeps log-densities in exp's range.
func Clip(m Container, lo, hi float64) (Container, error) {
	return ewClipRange(m, lo, hi)
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(m Container, val float64) (Container, error) {
	return ewReplaceInfNaN(m, val)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for equal-length containers.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Container, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
