// SPDX-License-Identifier: MIT

// Package dens - log-normal public surface.
//
// Layering (each adapter forwards to DlnormFull, no independent logic):
//
//	Dlnorm(x)                    ≡ DlnormFull(x, 0, 1, false)
//	DlnormLog(x, logForm)        ≡ DlnormFull(x, 0, 1, logForm)
//	DlnormMuSigma(x, mu, sigma)  ≡ DlnormFull(x, mu, sigma, false)
//	DlnormWith(x, opts...)       ≡ DlnormFull(x, mu|0, sigma|1, log|false)
//
// The bulk forms (DlnormMat*) mirror that layering over a matrix.Container
// through LogNormalFamily.

package dens

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstats/matrix"
)

// Log-normal defaults.
const (
	DefaultMu    = 0.0 // location of ln(X)
	DefaultSigma = 1.0 // scale of ln(X)
)

// LogNormalFamily is the log-normal instance of the generic family engine.
var LogNormalFamily = Family{
	Name:     "lnorm",
	Kernel:   DlnormFull[float64],
	DefaultA: DefaultMu,
	DefaultB: DefaultSigma,
	Validate: ValidateParams,
}

// ValidateParams reports ErrInvalidParameter unless mu is finite and sigma
// is finite and strictly positive. The kernels do not call it; they return
// NaN for the same inputs.
func ValidateParams(mu, sigma float64) error {
	if !isFinite(mu) {
		return fmt.Errorf("mu=%v: %w", mu, ErrInvalidParameter)
	}
	if !isFinite(sigma) || sigma <= 0 {
		return fmt.Errorf("sigma=%v: %w", sigma, ErrInvalidParameter)
	}

	return nil
}

// ---------- Scalar adapters ----------

// Dlnorm is the standard log-normal density (mu=0, sigma=1) at x.
func Dlnorm[T Float](x T) T {
	return DlnormFull(x, DefaultMu, DefaultSigma, false)
}

// DlnormLog is the standard log-normal density at x, or its log when logForm.
func DlnormLog[T Float](x T, logForm bool) T {
	return DlnormFull(x, DefaultMu, DefaultSigma, logForm)
}

// DlnormMuSigma is the log-normal density at x with the given parameters.
func DlnormMuSigma[T Float](x, mu, sigma T) T {
	return DlnormFull(x, mu, sigma, false)
}

// DlnormWith evaluates x with options WithMu, WithSigma, WithLog.
// Per-element options are rejected with ErrShapeMismatch.
func DlnormWith(x float64, opts ...Option) (float64, error) {
	return LogNormalFamily.EvalWith(x, opts...)
}

// LogNormal keeps the two parameters together for repeated evaluation.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// StdLogNormal is LogNormal{Mu: 0, Sigma: 1}.
var StdLogNormal = LogNormal{Mu: DefaultMu, Sigma: DefaultSigma}

// Validate reports ErrInvalidParameter for an invalid (Mu, Sigma).
func (d LogNormal) Validate() error { return ValidateParams(d.Mu, d.Sigma) }

// Prob is the density at x.
func (d LogNormal) Prob(x float64) float64 { return dlnorm(x, d.Mu, d.Sigma, false) }

// LogProb is the log-density at x.
func (d LogNormal) LogProb(x float64) float64 { return dlnorm(x, d.Mu, d.Sigma, true) }

// Density is Prob or LogProb depending on logForm.
func (d LogNormal) Density(x float64, logForm bool) float64 {
	return dlnorm(x, d.Mu, d.Sigma, logForm)
}

// Mode is exp(mu - sigma²), the location of the density's peak.
func (d LogNormal) Mode() float64 { return math.Exp(d.Mu - d.Sigma*d.Sigma) }

// Median is exp(mu).
func (d LogNormal) Median() float64 { return math.Exp(d.Mu) }

// Mat evaluates every element of X with d's parameters.
func (d LogNormal) Mat(X matrix.Container, logForm bool, opts ...Option) (matrix.Container, error) {
	return LogNormalFamily.Bulk(X, Scalar(d.Mu), Scalar(d.Sigma), logForm, opts...)
}

// ---------- Bulk adapters ----------

// DlnormMat evaluates the standard log-normal density at every element of X.
func DlnormMat(X matrix.Container) (matrix.Container, error) {
	return LogNormalFamily.BulkDefault(X)
}

// DlnormMatLog is DlnormMat with an explicit log flag.
func DlnormMatLog(X matrix.Container, logForm bool) (matrix.Container, error) {
	return LogNormalFamily.BulkLog(X, logForm)
}

// DlnormMatMuSigma evaluates every element of X with shared mu and sigma.
func DlnormMatMuSigma(X matrix.Container, mu, sigma float64) (matrix.Container, error) {
	return LogNormalFamily.BulkParams(X, mu, sigma)
}

// DlnormMatFull evaluates every element of X with shared mu, sigma and log flag.
func DlnormMatFull(X matrix.Container, mu, sigma float64, logForm bool) (matrix.Container, error) {
	return LogNormalFamily.BulkFull(X, mu, sigma, logForm)
}

// DlnormMatParams is the full broadcast form: mu and sigma are each Scalar
// or PerElement. Per-element containers must hold exactly X.Len() values.
// Errors: ErrNilInput, ErrShapeMismatch.
func DlnormMatParams(X matrix.Container, mu, sigma Param, logForm bool, opts ...Option) (matrix.Container, error) {
	return LogNormalFamily.Bulk(X, mu, sigma, logForm, opts...)
}

// DlnormMatWith evaluates X with WithMu/WithSigma (scalar or per-element),
// WithLog and WithWorkers.
func DlnormMatWith(X matrix.Container, opts ...Option) (matrix.Container, error) {
	return LogNormalFamily.BulkWith(X, opts...)
}

// DlnormSlice evaluates every element of xs into a fresh slice of the same
// length. A nil or empty xs yields an empty result.
func DlnormSlice(xs []float64, mu, sigma float64, logForm bool) []float64 {
	out := make([]float64, len(xs))
	for k, x := range xs {
		out[k] = dlnorm(x, mu, sigma, logForm)
	}

	return out
}
