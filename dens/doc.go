// Package dens evaluates probability densities of continuous distributions,
// one point at a time or element-wise over a matrix.Container.
//
// 🚀 What is in here?
//
//	Every family follows the same four layers:
//	  • Scalar kernel  : pure, allocation-free density in log-space
//	  • Scalar adapters: default-parameter entry points (Dlnorm, DlnormLog, …)
//	  • Bulk engine    : Family.Bulk: kernel applied at every linear index
//	  • Broadcasting   : each parameter is a shared Scalar or a PerElement container
//
//	The log-normal family ships as LogNormalFamily and the Dlnorm* functions.
//
// ✨ Numeric policy:
//   - x outside the support (x <= 0, x = +Inf) is not an error: density 0,
//     log-density -Inf.
//   - Invalid parameters (non-finite mu, sigma < 0, non-finite sigma) yield
//     NaN, the way math does. Callers that want a structured error call
//     ValidateParams (or LogNormal.Validate) first.
//   - sigma == 0 is the point-mass limit: +Inf at x == exp(mu), 0 elsewhere.
//   - Bulk shape problems ARE errors: ErrNilInput, ErrShapeMismatch.
//
// ⚙️ Usage:
//
//	p := dens.DlnormFull(2.0, 0.0, 1.0, false)           // scalar
//	X, _ := matrix.NewVector([]float64{1, 2, 3})
//	Y, err := dens.DlnormMatFull(X, 0, 1, true)          // log-densities, same shape as X
//	Z, err := dens.DlnormMatParams(X, dens.Scalar(0),
//		dens.PerElementSlice([]float64{1, 2, 3}), false,
//		dens.WithWorkers(4))                           // per-element sigma, parallel
//
// Go has no compile-time function evaluation; the kernels keep the
// matching discipline instead (no allocation, no I/O, no shared state) so
// they are safe to call from any goroutine and from hot loops.
package dens
