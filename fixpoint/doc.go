// Package fixpoint extracts the eigenvalue-1 eigenvector of a dilation or
// boundary-coefficient matrix — the fixed point of a two-scale refinement
// equation that anchors every scaling-function evaluation.
//
// The fixpoint package provides:
//
//   - Solver — a one-method capability interface so the numeric backend is
//     injectable (and mockable in tests).
//   - EigenSolver — the default implementation on top of gonum's general
//     (non-symmetric) eigendecomposition.
//
// Refinement-equation theory guarantees a simple eigenvalue 1 for valid
// filters; the solver verifies this actively. No eigenvalue within
// tolerance of 1, or more than one of them, is reported as
// ErrDegenerateRefinement rather than returning an arbitrary vector.
//
// The returned eigenvector carries the backend's scaling (unit Euclidean
// norm, arbitrary sign); callers apply their own normalization policy.
package fixpoint
