// SPDX-License-Identifier: MIT
// Package fixpoint: sentinel error set.
// All solver paths MUST return these sentinels (wrapped with an operation
// tag where context helps) and tests MUST check them via errors.Is.

package fixpoint

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed to the solver.
	ErrNilMatrix = errors.New("fixpoint: nil matrix")

	// ErrNonSquare signals that the input matrix is not square; dilation and
	// boundary-coefficient operators are square by construction.
	ErrNonSquare = errors.New("fixpoint: matrix is not square")

	// ErrEigenFailed indicates that the backend eigendecomposition did not
	// converge or could not be computed.
	ErrEigenFailed = errors.New("fixpoint: eigendecomposition failed")

	// ErrDegenerateRefinement indicates a degenerate refinement equation:
	// no eigenvalue within tolerance of 1, a repeated eigenvalue 1, or a
	// non-real candidate eigenvector. Valid two-scale filters always carry a
	// simple eigenvalue 1, so this is an input-definition error, not a
	// transient failure.
	ErrDegenerateRefinement = errors.New("fixpoint: degenerate refinement equation")
)
