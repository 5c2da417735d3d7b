// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the unexported ew* kernels and the Options snapshot to matrix_test only.
//   - Lets tests compare the *Dense fast path against the generic fallback
//     without widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options; tests catch drift.

// OptionsSnapshot is a read-only copy of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	AllowInf       bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, AllowInf: o.allowInf}
}

// GatherOptionsSnapshot_TestOnly resolves opts the way constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// PolicyOf_TestOnly reports the numeric policy stored in d.
func PolicyOf_TestOnly(d *Dense) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: d.validateNaNInf, AllowInf: d.allowInf}
}

// --- ew* kernel bridges -------------------------------------------------------

func EwMap_TestOnly(X Container, f func(k int, v float64) float64) (Container, error) {
	return ewMap(X, f)
}

func EwClipRange_TestOnly(X Container, lo, hi float64) (Container, error) {
	return ewClipRange(X, lo, hi)
}

func EwReplaceInfNaN_TestOnly(X Container, val float64) (Container, error) {
	return ewReplaceInfNaN(X, val)
}

func EwAllClose_TestOnly(a, b Container, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// CloseTo_TestOnly exposes the scalar tolerance predicate behind AllClose.
func CloseTo_TestOnly(a, b, rtol, atol float64) bool { return closeTo(a, b, rtol, atol) }
