// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/Inf at all.
//   - allowInf is a narrow exception for ±Inf as legitimate data (e.g. an
//     evaluation point at +Inf). Under validation, NaN remains rejected even
//     when allowInf=true.
//   - Output buffers produced by Like() always run with validation off:
//     kernels write -Inf (log-density of zero) and NaN (invalid parameters).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInf permits ±Inf values while validation is on.
	//
	// IMPORTANT:
	//   - This is NOT a “dirty-data” mode: NaN is still rejected.
	DefaultAllowInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowInf       bool // DefaultAllowInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
//
// Behavior highlights:
//   - NaN is always rejected; ±Inf is rejected unless WithAllowInf is also set.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through on newly created matrices.
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//
// AI-Hints:
//   - Combine with ReplaceInfNaN or Clip if you disable checks on ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInf permits ±Inf entries while keeping NaN rejected.
//
// Notes:
//   - Intended for evaluation grids that include the +Inf boundary.
func WithAllowInf() Option {
	return func(o *Options) { o.allowInf = true }
}

// gatherOptions resolves user setters on top of documented defaults.
// Last-writer-wins; nil setters are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
