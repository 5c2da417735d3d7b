// SPDX-License-Identifier: MIT

// Package dens: functional configuration for the option-based entry points
// (DlnormWith, DlnormMatWith, Family.EvalWith, Family.BulkWith) and for the
// bulk engine's execution policy.
//
// Recognized options:
//   - WithMu / WithMuPerElement:       first parameter (location), default family.DefaultA
//   - WithSigma / WithSigmaPerElement: second parameter (scale), default family.DefaultB
//   - WithLog / WithLogForm:           log-density output, default false
//   - WithWorkers:                     bulk parallelism, default DefaultWorkers (serial)
//
// Constructors panic only on nonsensical values (programmer error).
package dens

const (
	// DefaultWorkers keeps bulk evaluation on the calling goroutine.
	DefaultWorkers = 1

	// minChunk is the smallest index range handed to one worker; smaller
	// inputs use fewer workers.
	minChunk = 256
)

const panicWorkersInvalid = "dens: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Parameter fields are unset (nil) until an option names them; resolution
// against family defaults happens in gatherOptions.
type Options struct {
	a, b    *Param
	logForm bool
	workers int
}

// WithMu sets the first parameter to a shared scalar.
func WithMu(mu float64) Option {
	p := Scalar(mu)
	return func(o *Options) { o.a = &p }
}

// WithSigma sets the second parameter to a shared scalar.
func WithSigma(sigma float64) Option {
	p := Scalar(sigma)
	return func(o *Options) { o.b = &p }
}

// WithMuPerElement sets the first parameter to a per-element Param.
// Only meaningful for bulk entry points; scalar entry points reject it.
func WithMuPerElement(p Param) Option {
	return func(o *Options) { o.a = &p }
}

// WithSigmaPerElement sets the second parameter to a per-element Param.
func WithSigmaPerElement(p Param) Option {
	return func(o *Options) { o.b = &p }
}

// WithLog selects log-density output.
func WithLog() Option {
	return func(o *Options) { o.logForm = true }
}

// WithLogForm sets the log-density flag explicitly.
func WithLogForm(logForm bool) Option {
	return func(o *Options) { o.logForm = logForm }
}

// WithWorkers evaluates bulk inputs with up to n goroutines.
// Output is identical to serial evaluation. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// resolved is the option set after defaults are applied.
type resolved struct {
	a, b    Param
	logForm bool
	workers int
}

// gatherOptions applies setters in order on top of the family defaults.
func gatherOptions(defA, defB float64, user ...Option) resolved {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // last-writer-wins
	}

	r := resolved{a: Scalar(defA), b: Scalar(defB), logForm: o.logForm, workers: o.workers}
	if o.a != nil {
		r.a = *o.a
	}
	if o.b != nil {
		r.b = *o.b
	}

	return r
}
