// SPDX-License-Identifier: MIT

// Package fixpoint: the Solver capability and its gonum-backed default.

package fixpoint

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the eigenvalue matching tolerance: an eigenvalue λ is
// accepted as "the" fixed point when |λ − 1| ≤ tolerance in the complex
// plane. 1e-9 balances float64 eigensolver accuracy against false matches.
const DefaultTolerance = 1e-9

// targetEigenvalue is the fixed-point eigenvalue of a two-scale operator.
const targetEigenvalue = 1.0

// Solver extracts the eigenvector associated with eigenvalue 1.
//
// Implementations must be safe for reuse across calls; the returned slice is
// owned by the caller. The vector's scale and sign are backend-defined.
type Solver interface {
	// EigenvectorOne returns an eigenvector of a for eigenvalue 1, or
	// ErrDegenerateRefinement when no simple eigenvalue 1 exists.
	EigenvectorOne(a *mat.Dense) ([]float64, error)
}

// EigenSolver is the default Solver on gonum's general eigendecomposition.
// The zero value uses DefaultTolerance; construct via NewSolver to set a
// custom tolerance.
type EigenSolver struct {
	tol float64
}

// NewSolver returns an EigenSolver with the given matching tolerance.
// Non-positive or non-finite tolerances fall back to DefaultTolerance.
// Complexity: O(1).
func NewSolver(tol float64) *EigenSolver {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		tol = DefaultTolerance
	}

	return &EigenSolver{tol: tol}
}

// EigenvectorOne extracts the eigenvalue-1 eigenvector of a.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square).
//   - Stage 2: full right-eigendecomposition via gonum; scan the spectrum
//     for eigenvalues within tol of 1 in deterministic index order.
//   - Stage 3: demand exactly one match, reject non-real vectors, return
//     the real parts.
//
// Behavior highlights:
//   - The simplicity check counts eigenvalues within tol of 1, which equals
//     the geometric multiplicity for diagonalizable two-scale operators.
//   - The output keeps the backend's unit-norm scaling and sign; callers
//     normalize per their own convention.
//
// Inputs:
//   - a: square dilation or boundary-coefficient matrix.
//
// Returns:
//   - []float64: the eigenvector, length a.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare      (validation).
//   - ErrEigenFailed                  (backend non-convergence).
//   - ErrDegenerateRefinement         (no match, multiple matches, or a
//     candidate with a non-negligible imaginary part).
//
// Determinism:
//   - Fixed ascending scan over the spectrum; stable for identical inputs.
//
// Complexity:
//   - Time O(n³) for the decomposition, Space O(n²).
//
// AI-Hints:
//   - For repeated evaluations of the same filter, memoize the result; the
//     vector is a pure function of the matrix.
//   - Inject a mock Solver to unit-test downstream normalization without a
//     numeric backend.
func (s *EigenSolver) EigenvectorOne(a *mat.Dense) ([]float64, error) {
	// Validate the input shape before factorizing.
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	tol := s.tol
	if tol <= 0 {
		tol = DefaultTolerance // zero-value receiver support
	}

	// Full right-eigendecomposition; ok=false means non-convergence.
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, fmt.Errorf("EigenvectorOne: %w", ErrEigenFailed)
	}

	// Scan the spectrum for eigenvalues within tol of 1. Deterministic
	// ascending index order; count doubles as the simplicity check.
	values := eig.Values(nil)
	matched := -1
	matches := 0
	for i, v := range values {
		if cmplx.Abs(v-complex(targetEigenvalue, 0)) <= tol {
			matched = i
			matches++
		}
	}
	if matches == 0 {
		return nil, fmt.Errorf("EigenvectorOne: no eigenvalue 1 within tol=%g: %w", tol, ErrDegenerateRefinement)
	}
	if matches > 1 {
		return nil, fmt.Errorf("EigenvectorOne: eigenvalue 1 has multiplicity %d: %w", matches, ErrDegenerateRefinement)
	}

	// Extract the matched column and reject non-real components. A simple
	// real eigenvalue of a real matrix has a real eigenvector; a complex
	// one here implies a conjugate pair straddling 1, i.e. degeneracy.
	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		v := vectors.At(i, matched)
		if math.Abs(imag(v)) > tol {
			return nil, fmt.Errorf("EigenvectorOne: non-real eigenvector component at %d: %w", i, ErrDegenerateRefinement)
		}
		out[i] = real(v)
	}

	return out, nil
}
