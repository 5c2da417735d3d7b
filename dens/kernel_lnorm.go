// SPDX-License-Identifier: MIT

// Package dens - log-normal scalar kernel.
//
// Purpose:
//   - Evaluate the log-normal density at one point with one parameter set.
//   - Work in log-space; exponentiate once at the end, never for log-form output.
//
// Formula (x > 0, sigma > 0):
//
//	log f(x) = -ln(x) - ln(sigma) - ln(sqrt(2π)) - (ln(x) - mu)² / (2σ²)
//
// Evaluation order (first match wins):
//  1. x is NaN                                   → NaN
//  2. mu non-finite, sigma NaN/±Inf, or sigma < 0 → NaN (invalid parameter)
//  3. x <= 0 or x == +Inf                        → 0   (log: -Inf)
//  4. sigma == 0 (point mass at exp(mu))         → +Inf at x == exp(mu), else 0 (log: +Inf / -Inf)
//  5. formula above.
//
// Complexity: O(1), no allocation.

package dens

import "math"

// lnSqrt2Pi is ln(sqrt(2π)).
const lnSqrt2Pi = 0.918938533204672741780329736405617639861397473637783412817151540

// DlnormFull is the log-normal density kernel: the density of x under
// LogNormal(mu, sigma), or its natural log when logForm is true.
// See the package-level evaluation order for edge cases.
func DlnormFull[T Float](x, mu, sigma T, logForm bool) T {
	return T(dlnorm(float64(x), float64(mu), float64(sigma), logForm))
}

// dlnorm is the float64 body shared by every entry point.
func dlnorm(x, mu, sigma float64, logForm bool) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case !isFinite(mu) || !isFinite(sigma) || sigma < 0:
		return math.NaN()
	case x <= 0 || math.IsInf(x, 1):
		return zeroDensity(logForm)
	case sigma == 0:
		if x == math.Exp(mu) {
			return math.Inf(1) // density and log-density both diverge
		}
		return zeroDensity(logForm)
	}

	lx := math.Log(x)
	z := (lx - mu) / sigma
	ld := -lx - math.Log(sigma) - lnSqrt2Pi - 0.5*z*z
	if logForm {
		return ld
	}

	return math.Exp(ld)
}

// zeroDensity is 0, or -Inf in log-form.
func zeroDensity(logForm bool) float64 {
	if logForm {
		return math.Inf(-1)
	}

	return 0
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
