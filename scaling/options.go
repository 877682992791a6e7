// SPDX-License-Identifier: MIT

// Package scaling: functional configuration for the evaluation kernels.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — misconfiguration is a programmer error, not input data),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are constants.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package scaling

import (
	"math"

	"github.com/katalvlaran/wavelet/fixpoint"
)

const (
	// DefaultTolerance is the numeric tolerance shared by the fixed-point
	// eigenvalue match and the normalization guards.
	DefaultTolerance = fixpoint.DefaultTolerance

	// DefaultWorkers disables within-level parallelism: levels are filled by
	// a single goroutine unless WithWorkers raises the bound.
	DefaultWorkers = 1
)

// options carries the resolved evaluation configuration.
type options struct {
	tol     float64         // numeric tolerance (> 0, finite)
	workers int             // within-level fill parallelism bound (≥ 1)
	solver  fixpoint.Solver // eigenvalue-1 backend (never nil after gather)
}

// Option mutates the evaluation configuration.
type Option func(*options)

// WithTolerance sets the numeric tolerance used for the eigenvalue match
// and the normalization guards. Panics on a non-finite or non-positive
// value (programmer error).
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("scaling: WithTolerance requires a finite tolerance > 0")
	}

	return func(o *options) { o.tol = tol }
}

// WithWorkers bounds the parallel fill of a refinement level's new
// positions. n == 1 keeps the fill sequential. Panics on n < 1.
//
// Levels remain strict barriers regardless of n; only the embarrassingly
// parallel inner loop fans out.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("scaling: WithWorkers requires n >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithSolver injects a custom eigenvalue-1 backend (e.g. a mock in tests).
// Panics on nil.
func WithSolver(s fixpoint.Solver) Option {
	if s == nil {
		panic("scaling: WithSolver requires a non-nil solver")
	}

	return func(o *options) { o.solver = s }
}

// gatherOptions applies opts over the documented defaults and materializes
// the default solver with the resolved tolerance when none was injected.
func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance, workers: DefaultWorkers}
	for _, apply := range opts {
		apply(&o)
	}
	if o.solver == nil {
		o.solver = fixpoint.NewSolver(o.tol)
	}

	return o
}
