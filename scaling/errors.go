// SPDX-License-Identifier: MIT
// Package scaling: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// scaling package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. Wrapping happens once, at the public facade,
// with an operation tag; callers still match via errors.Is.

package scaling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavelet/fixpoint"
)

var (
	// ErrNilFilter indicates that a nil filter description was passed to an
	// evaluator or builder.
	ErrNilFilter = errors.New("scaling: nil filter")

	// ErrNegativeResolution indicates a requested refinement resolution
	// R < 0. Dyadic tables are defined for R ≥ 0 only.
	ErrNegativeResolution = errors.New("scaling: resolution must be >= 0")

	// ErrFilterMismatch indicates that a boundary family's vanishing-moment
	// count differs from its paired interior filter's. The two must agree
	// for the mixed boundary/interior recursion to be well-defined.
	ErrFilterMismatch = errors.New("scaling: boundary and interior vanishing-moment counts differ")
)

// ErrDegenerateRefinement aliases the fixpoint sentinel so callers of the
// evaluation surface can match the condition without importing fixpoint.
// errors.Is behavior is identical through the alias.
var ErrDegenerateRefinement = fixpoint.ErrDegenerateRefinement

// Operation name constants for unified error wrapping.
const (
	opDilationMatrix        = "DilationMatrix"
	opBoundaryMatrix        = "BoundaryMatrix"
	opIntegerValues         = "IntegerValues"
	opDyadicValues          = "DyadicValues"
	opBoundaryValuesAtZero  = "BoundaryValuesAtZero"
	opBoundaryIntegerValues = "BoundaryIntegerValues"
	opBoundaryDyadicValues  = "BoundaryDyadicValues"
)

// scalingErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func scalingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
