// SPDX-License-Identifier: MIT
// Package dyadic: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dyadic
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions.

package dyadic

import "errors"

var (
	// ErrInvalidInterval is returned when a support's lower bound exceeds its
	// upper bound (A > B). A single-point support [A, A] is valid.
	ErrInvalidInterval = errors.New("dyadic: support lower bound exceeds upper bound")

	// ErrNegativeResolution indicates a requested resolution R < 0.
	// Dyadic positions k/2^R are defined for R ≥ 0 only.
	ErrNegativeResolution = errors.New("dyadic: resolution must be >= 0")

	// ErrResolutionOverflow indicates a resolution beyond MaxResolution,
	// for which the slot arithmetic 2^R would overflow int64 headroom.
	ErrResolutionOverflow = errors.New("dyadic: resolution exceeds MaxResolution")

	// ErrLevelOutOfRange indicates a refinement level outside [0, R].
	ErrLevelOutOfRange = errors.New("dyadic: level outside [0, resolution]")
)
