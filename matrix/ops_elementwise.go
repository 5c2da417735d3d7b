// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (map, sanitize, compare).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers in api.go.
//   - Kernels speak Container (linear index), so any backend qualifies.
//
// Determinism & Performance:
//   - Fixed loop order (flat 0..n-1, i.e. row-major).
//   - Dense fast-path operates on a single flat buffer.
//   - Exactly one output allocation (via Like); inputs are never mutated.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.

package matrix

import (
	"math"
)

// ewMap computes out[k] = f(k, X[k]) into a fresh container from X.Like().
// Time: O(n). Space: O(n). Deterministic 0..n-1 loop.
//
// AI-Hint: f must be pure; it may return NaN/±Inf (outputs are unvalidated).
func ewMap(X Container, f func(k int, v float64) float64) (Container, error) {
	// Validate input presence using centralized validator.
	if err := ValidateContainer(X); err != nil {
		return nil, matrixErrorf("Map", err)
	}
	// Allocate output with the same shape and backend.
	out, err := X.Like()
	if err != nil {
		return nil, matrixErrorf("Map", err)
	}
	n := X.Len()

	// Dense fast-path: both sides are flat row-major buffers.
	if d, ok := X.(*Dense); ok {
		if od, ok2 := out.(*Dense); ok2 {
			for k := 0; k < n; k++ {
				od.data[k] = f(k, d.data[k]) // one read, one write
			}
			return od, nil
		}
	}

	// Generic fallback via AtIndex/SetIndex (still deterministic).
	var v float64
	for k := 0; k < n; k++ {
		if v, err = X.AtIndex(k); err != nil {
			return nil, matrixErrorf("Map", err)
		}
		if err = out.SetIndex(k, f(k, v)); err != nil {
			return nil, matrixErrorf("Map", err)
		}
	}

	return out, nil
}

// ewReplaceInfNaN copies X replacing any {±Inf, NaN} by val (finite).
// Time: O(n). Space: O(n).
func ewReplaceInfNaN(X Container, val float64) (Container, error) {
	// Validate 'val' is finite per numeric policy.
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}
	out, err := ewMap(X, func(_ int, v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return val
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}

	return out, nil
}

// ewClipRange copies X clamping each entry into [lo, hi].
// Time: O(n). Space: O(n).
//
// Note: Bounds must not be NaN; if lo > hi, they are swapped (normalized).
// ±Inf bounds are legal and leave that side unclamped. NaN entries stay NaN.
func ewClipRange(X Container, lo, hi float64) (Container, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	// Normalize bound order to avoid surprising errors.
	if lo > hi {
		lo, hi = hi, lo
	}
	out, err := ewMap(X, func(_ int, v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf("Clip", err)
	}

	return out, nil
}

// closeTo reports |a-b| ≤ atol + rtol*|b| with IEEE special cases made explicit:
// equal values (including equal infinities) are close; NaN is never close.
func closeTo(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise closeness for containers of equal length.
// Returns (true,nil) if all elements satisfy closeTo; (false,nil) otherwise.
// Time: O(n). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and hold the same number of elements.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func ewAllClose(a, b Container, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateContainer(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateContainer(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameLen(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	n := a.Len()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := 0; k < n; k++ {
				if !closeTo(da.data[k], db.data[k], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via AtIndex (bounds-safe; still deterministic).
	for k := 0; k < n; k++ {
		av, err := a.AtIndex(k)
		if err != nil {
			return false, matrixErrorf("AllClose", err)
		}
		bv, err := b.AtIndex(k)
		if err != nil {
			return false, matrixErrorf("AllClose", err)
		}
		if !closeTo(av, bv, rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
