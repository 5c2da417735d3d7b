// SPDX-License-Identifier: MIT

// Package dens - generic family engine.
//
// Purpose:
//   - Implement the scalar adapters and the bulk/broadcast engine ONCE for
//     every two-parameter family; a family only supplies its kernel and
//     defaults.
//
// Bulk contract:
//   - Y[k] = Kernel(X[k], a_at(k), b_at(k), logForm) for k in [0, X.Len()).
//   - Y comes from X.Like(): same shape, same backend, single allocation.
//   - X and per-element parameter containers are never written.
//   - Per-element parameters must have exactly X.Len() elements.
//
// Determinism:
//   - Every element depends only on its own input and parameters, so the
//     parallel path (WithWorkers) writes disjoint index ranges and produces
//     the same output as the serial path.
//
// Complexity:
//   - Time O(n), Space O(n) for the output only.

package dens

import (
	"github.com/katalvlaran/lvstats/matrix"
	"golang.org/x/sync/errgroup"
)

// Family is a two-parameter distribution family.
type Family struct {
	// Name is used as the error tag prefix (e.g. "lnorm").
	Name string

	// Kernel evaluates one point.
	Kernel Kernel2

	// DefaultA and DefaultB are the parameters used by the default-parameter
	// entry points (log-normal: mu=0, sigma=1).
	DefaultA, DefaultB float64

	// Validate reports whether (a, b) is inside the family's parameter
	// domain. Nil means every pair is accepted.
	Validate func(a, b float64) error
}

// ---------- Scalar adapters (thin forwarding, no independent logic) ----------

// Eval is Kernel(x, DefaultA, DefaultB, false).
func (f Family) Eval(x float64) float64 {
	return f.Kernel(x, f.DefaultA, f.DefaultB, false)
}

// EvalLog is Kernel(x, DefaultA, DefaultB, logForm).
func (f Family) EvalLog(x float64, logForm bool) float64 {
	return f.Kernel(x, f.DefaultA, f.DefaultB, logForm)
}

// EvalParams is Kernel(x, a, b, false).
func (f Family) EvalParams(x, a, b float64) float64 {
	return f.Kernel(x, a, b, false)
}

// EvalFull is Kernel(x, a, b, logForm).
func (f Family) EvalFull(x, a, b float64, logForm bool) float64 {
	return f.Kernel(x, a, b, logForm)
}

// EvalWith resolves options against the family defaults and evaluates x.
// Per-element parameters make no sense for one point and are rejected with
// ErrShapeMismatch.
func (f Family) EvalWith(x float64, opts ...Option) (float64, error) {
	r := gatherOptions(f.DefaultA, f.DefaultB, opts...)
	if !r.a.IsScalar() || !r.b.IsScalar() {
		return 0, densErrorf(f.Name+".EvalWith", ErrShapeMismatch)
	}

	return f.Kernel(x, r.a.Value(), r.b.Value(), r.logForm), nil
}

// ---------- Bulk adapters (mirror the scalar layering) ----------

// BulkDefault evaluates every element of X with the default parameters.
func (f Family) BulkDefault(X matrix.Container) (matrix.Container, error) {
	return f.Bulk(X, Scalar(f.DefaultA), Scalar(f.DefaultB), false)
}

// BulkLog evaluates every element of X with the default parameters and the given log flag.
func (f Family) BulkLog(X matrix.Container, logForm bool) (matrix.Container, error) {
	return f.Bulk(X, Scalar(f.DefaultA), Scalar(f.DefaultB), logForm)
}

// BulkParams evaluates every element of X with shared scalar parameters.
func (f Family) BulkParams(X matrix.Container, a, b float64) (matrix.Container, error) {
	return f.Bulk(X, Scalar(a), Scalar(b), false)
}

// BulkFull evaluates every element of X with shared scalar parameters and the given log flag.
func (f Family) BulkFull(X matrix.Container, a, b float64, logForm bool) (matrix.Container, error) {
	return f.Bulk(X, Scalar(a), Scalar(b), logForm)
}

// BulkWith resolves options (parameters, log flag, workers) and evaluates X.
func (f Family) BulkWith(X matrix.Container, opts ...Option) (matrix.Container, error) {
	r := gatherOptions(f.DefaultA, f.DefaultB, opts...)

	return f.bulk(X, r)
}

// Bulk is the full broadcast form: each parameter is Scalar or PerElement.
// MAIN DESCRIPTION:
//   - Element-wise application of Kernel over X with broadcast parameters.
//
// Implementation:
//   - Stage 1: validate X (ErrNilInput) and per-element lengths (ErrShapeMismatch).
//   - Stage 2: allocate Y via X.Like().
//   - Stage 3: evaluate serially, or in contiguous chunks when WithWorkers(n>1).
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch (also matches matrix.ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n), Space O(n).
func (f Family) Bulk(X matrix.Container, a, b Param, logForm bool, opts ...Option) (matrix.Container, error) {
	r := gatherOptions(f.DefaultA, f.DefaultB, opts...)
	r.a, r.b, r.logForm = a, b, logForm

	return f.bulk(X, r)
}

func (f Family) bulk(X matrix.Container, r resolved) (matrix.Container, error) {
	tag := f.Name + ".Bulk"

	// Stage 1: validation, nil before shape.
	if err := matrix.ValidateContainer(X); err != nil {
		return nil, densErrorf(tag, ErrNilInput)
	}
	n := X.Len()
	if err := r.a.check("first parameter", n); err != nil {
		return nil, densErrorf(tag, err)
	}
	if err := r.b.check("second parameter", n); err != nil {
		return nil, densErrorf(tag, err)
	}

	// Stage 2: single output allocation.
	Y, err := X.Like()
	if err != nil {
		return nil, densErrorf(tag, err)
	}

	// Stage 3: evaluation.
	w := effectiveWorkers(r.workers, n)
	if w <= 1 || !parallelSafe(X, Y, r) {
		if err = f.evalRange(X, Y, r, 0, n); err != nil {
			return nil, densErrorf(tag, err)
		}
		return Y, nil
	}

	chunk := (n + w - 1) / w
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error { return f.evalRange(X, Y, r, lo, hi) })
	}
	if err = g.Wait(); err != nil {
		return nil, densErrorf(tag, err)
	}

	return Y, nil
}

// evalRange fills Y[lo:hi]. Dense pairs use the flat fast path.
func (f Family) evalRange(X, Y matrix.Container, r resolved, lo, hi int) error {
	var a, b, x float64
	var err error

	if xd, ok := X.(*matrix.Dense); ok {
		if yd, ok2 := Y.(*matrix.Dense); ok2 {
			xs, ys := xd.Values(), yd.Values()
			for k := lo; k < hi; k++ {
				if a, err = r.a.at(k); err != nil {
					return err
				}
				if b, err = r.b.at(k); err != nil {
					return err
				}
				ys[k] = f.Kernel(xs[k], a, b, r.logForm)
			}
			return nil
		}
	}

	// Generic fallback via AtIndex/SetIndex.
	for k := lo; k < hi; k++ {
		if x, err = X.AtIndex(k); err != nil {
			return err
		}
		if a, err = r.a.at(k); err != nil {
			return err
		}
		if b, err = r.b.at(k); err != nil {
			return err
		}
		if err = Y.SetIndex(k, f.Kernel(x, a, b, r.logForm)); err != nil {
			return err
		}
	}

	return nil
}

// effectiveWorkers caps the worker count so each chunk has at least minChunk elements.
func effectiveWorkers(requested, n int) int {
	if requested <= 1 || n < 2*minChunk {
		return 1
	}

	return min(requested, n/minChunk)
}

// parallelSafe reports whether concurrent reads of X and the parameter
// containers, plus disjoint writes to Y, are known to be safe. Unknown
// backends are evaluated serially.
func parallelSafe(X, Y matrix.Container, r resolved) bool {
	if r.a.elems != nil && r.a.values == nil && !knownBackend(r.a.elems) {
		return false
	}
	if r.b.elems != nil && r.b.values == nil && !knownBackend(r.b.elems) {
		return false
	}

	return knownBackend(X) && knownBackend(Y)
}

func knownBackend(c matrix.Container) bool {
	switch c.(type) {
	case *matrix.Dense, *matrix.GonumDense:
		return true
	default:
		return false
	}
}
