// Package scaling evaluates Daubechies scaling functions — the standard
// interior function and the boundary-adapted families needed near the edges
// of a finite domain — at every dyadic rational k/2^R of their support.
//
// The scaling package provides:
//
//   - DilationMatrix / BoundaryMatrix — the two-scale relation as a linear
//     operator on integer-point values.
//   - IntegerValues — the interior fixed point (eigenvalue-1 eigenvector),
//     L1-normalized with vanishing support endpoints.
//   - DyadicValues — level-by-level refinement of the interior function up
//     to an arbitrary resolution R.
//   - BoundaryValuesAtZero / BoundaryIntegerValues / BoundaryDyadicValues —
//     the same pipeline for a left or right boundary family, combining
//     boundary self-interaction with interior spillover at every level.
//
// Evaluation is a strict data-dependency chain
//
//	taps → matrix → fixed point → level 0 → level 1 → … → level R
//
// Levels are barriers: level L reads only completed levels (and, for the
// boundary case, the fully built interior table at resolution R). Within a
// level every new position is independent; WithWorkers enables a bounded
// parallel fill of that inner loop.
//
// All results are pure functions of (filter, resolution): deterministic,
// safe to memoize, and owned exclusively by the caller.
//
// Errors follow the package sentinel convention (errors.Is): a negative
// resolution is ErrNegativeResolution, a vanishing-moment mismatch between
// a boundary family and its paired interior filter is ErrFilterMismatch,
// and a refinement equation without a simple eigenvalue 1 surfaces as
// fixpoint.ErrDegenerateRefinement.
package scaling
