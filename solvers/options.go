// SPDX-License-Identifier: MIT

// Package solvers: functional configuration for Solve. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package solvers

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod is the strategy used when no WithMethod option is given.
	DefaultMethod = MethodGauss

	// DefaultVerify controls whether Solve re-multiplies A·x and compares with b.
	DefaultVerify = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMethodInvalid = "solvers: WithMethod: unknown method"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	method Method // DefaultMethod
	verify bool   // DefaultVerify
}

// WithMethod selects the solving strategy.
//
// Errors:
//   - Panics with a stable message when m is not one of the Method constants.
func WithMethod(m Method) Option {
	if !m.valid() {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithVerify makes Solve check A·x == b exactly before returning x.
// A failed check yields ErrVerification.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{method: DefaultMethod, verify: DefaultVerify}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
