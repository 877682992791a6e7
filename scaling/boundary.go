// SPDX-License-Identifier: MIT

// Package scaling: the boundary evaluator.
// Boundary families obey a two-term recursion: a self-interaction among the
// p boundary functions plus spillover from interior translates. Phase A
// resolves the integers of the union support (value at 0 from its own fixed
// point, the rest from an outer-edge-inward walk); Phase B refines level by
// level against the fully built interior table.

package scaling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
)

// BoundaryValuesAtZero computes the boundary family's values at the
// boundary point 0: the eigenvalue-1 eigenvector of the boundary
// coefficient matrix, one entry per boundary function k.
//
// Normalization policy: the eigenvector's scale is fixed so the entries sum
// to 1, mirroring the interior partition-of-unity convention Σ_n φ(n) = 1
// at the matching integer. An entry sum within tolerance of 0 leaves the
// scale undefined and is reported as degenerate rather than guessed.
//
// Inputs:
//   - b:    boundary family description (non-nil).
//   - opts: WithTolerance, WithSolver.
//
// Returns:
//   - []float64: values φᵇ_k(0), k = 0..p−1.
//
// Errors:
//   - ErrNilFilter.
//   - fixpoint.ErrDegenerateRefinement, fixpoint.ErrEigenFailed.
//
// Complexity:
//   - Time O(p³), Space O(p²).
func BoundaryValuesAtZero(b *filterbank.Boundary, opts ...Option) ([]float64, error) {
	// Validate before building the operator.
	if b == nil {
		return nil, scalingErrorf(opBoundaryValuesAtZero, ErrNilFilter)
	}
	o := gatherOptions(opts...)

	m, err := BoundaryMatrix(b)
	if err != nil {
		return nil, scalingErrorf(opBoundaryValuesAtZero, err)
	}
	v, err := o.solver.EigenvectorOne(m)
	if err != nil {
		return nil, scalingErrorf(opBoundaryValuesAtZero, err)
	}

	// Sum-to-one scale; a vanishing sum means the policy cannot apply.
	var sum float64
	for _, x := range v {
		sum += x
	}
	if math.Abs(sum) <= o.tol {
		return nil, scalingErrorf(opBoundaryValuesAtZero,
			fmt.Errorf("entry sum %g too small to normalize: %w", sum, ErrDegenerateRefinement))
	}
	for i := range v {
		v[i] /= sum
	}

	return v, nil
}

// BoundaryIntegerValues computes every boundary function at every integer
// of the family's union support (Phase A).
//
// Implementation:
//   - Stage 1: validate (non-nil filters, equal vanishing-moment counts)
//     and resolve the collaborating level-0 grids.
//   - Stage 2: place BoundaryValuesAtZero at the boundary point; the outer
//     support endpoint stays at its zero initialization — every function is
//     compactly supported inside it, so the sample is exactly 0.
//   - Stage 3: walk the remaining integers from the outer edge inward —
//     the value at x reads the family at 2x, which lies farther out — and
//     apply the two-term recursion; parents outside either support
//     contribute zero via explicit predicates.
//
// Inputs:
//   - b:    boundary family (non-nil).
//   - f:    paired interior filter (non-nil, same vanishing-moment count).
//   - opts: WithTolerance, WithSolver.
//
// Returns:
//   - [][]float64: p rows × one column per integer of the union support,
//     ascending by position.
//
// Errors:
//   - ErrNilFilter, ErrFilterMismatch.
//   - Propagated BoundaryValuesAtZero / IntegerValues errors.
//
// Determinism:
//   - Fixed outer-to-inner walk and fixed tap order.
//
// Complexity:
//   - Time O(N³ + p²·N), Space O(p·N) with N = tap count.
func BoundaryIntegerValues(b *filterbank.Boundary, f *filterbank.Interior, opts ...Option) ([][]float64, error) {
	// Validate the pairing; a moment mismatch makes the recursion undefined.
	if b == nil || f == nil {
		return nil, scalingErrorf(opBoundaryIntegerValues, ErrNilFilter)
	}
	if b.VanishingMoments() != f.VanishingMoments() {
		return nil, scalingErrorf(opBoundaryIntegerValues, ErrFilterMismatch)
	}
	_ = gatherOptions(opts...)

	// Level-0 grids for both supports; resolution 0 cannot fail validation.
	bGrid, _ := dyadic.NewGrid(b.Support(), 0)
	iGrid, _ := dyadic.NewGrid(f.Support(), 0)

	// Interior integer values feed the spillover term.
	iv, err := IntegerValues(f, opts...)
	if err != nil {
		return nil, scalingErrorf(opBoundaryIntegerValues, err)
	}

	// Family values at the boundary point itself.
	zero, err := BoundaryValuesAtZero(b, opts...)
	if err != nil {
		return nil, scalingErrorf(opBoundaryIntegerValues, err)
	}

	p := b.VanishingMoments()
	w := b.Support().Width()
	rows := make([][]float64, p)
	tapRows := make([][]float64, p)
	zeroSlot, _ := bGrid.IntegerSlot(0)
	for k := 0; k < p; k++ {
		rows[k] = make([]float64, w)
		rows[k][zeroSlot] = zero[k]
		// Row shape was validated at construction; the error is unreachable.
		if tapRows[k], err = b.Row(k); err != nil {
			return nil, scalingErrorf(opBoundaryIntegerValues, err)
		}
	}
	// The outer support endpoint (slot w−1 left, slot 0 right) keeps its
	// zero initialization: compact support pins the sample to exactly 0.

	// Outer-to-inner walk over the interior integers of the support.
	if b.Side() == filterbank.Left {
		for s := w - 2; s >= 1; s-- { // x = s, descending toward the edge point
			for k := 0; k < p; k++ {
				rows[k][s] = refineBoundary(rows, tapRows, b.Side(), bGrid, iGrid, iv, k, s, 1)
			}
		}
	} else {
		for s := 1; s <= w-2; s++ { // x = s−(w−1), ascending toward 0
			for k := 0; k < p; k++ {
				rows[k][s] = refineBoundary(rows, tapRows, b.Side(), bGrid, iGrid, iv, k, s, 1)
			}
		}
	}

	return rows, nil
}

// BoundaryDyadicValues computes every boundary function at every dyadic
// position of the family's union support up to resolution R (Phase B).
//
// Implementation:
//   - Stage 1: validate (non-nil filters, R ≥ 0, equal vanishing-moment
//     counts), then fully build the interior table at resolution R — the
//     spillover term of every level reads it.
//   - Stage 2: seed level 0 from BoundaryIntegerValues (integer q of the
//     support at slot q·2^R).
//   - Stage 3: for L = 1..R apply the same two-term recursion as Phase A:
//     the self term reads the family at 2x (a completed coarser level of
//     this table), the spillover term reads the interior table at 2x−m
//     (left) or 2x+m (right) for the interior-reaching taps m ≥ p. Levels
//     are strict barriers; within a level the fill may fan out over
//     WithWorkers goroutines.
//
// The open outer endpoint of the support is a level-0 slot seeded to its
// exact zero and is never rewritten by refinement — no neighbour-copy
// stopgap.
//
// Inputs:
//   - b:          boundary family (non-nil).
//   - f:          paired interior filter (non-nil, same moment count).
//   - resolution: refinement resolution R ≥ 0.
//   - opts:       WithTolerance, WithSolver, WithWorkers.
//
// Returns:
//   - *BoundarySamples: p rows × grid columns, exclusively owned by the
//     caller; row count always equals the vanishing-moment count.
//
// Errors:
//   - ErrNilFilter, ErrNegativeResolution, ErrFilterMismatch.
//   - dyadic.ErrResolutionOverflow.
//   - Propagated interior / Phase A errors.
//
// Determinism:
//   - Fixed level order, fixed (slot, function, tap) accumulation order;
//     identical results for any worker count.
//
// Complexity:
//   - Time O(N³ + p·N²·2^R), Space O((p+N)·2^R·N) with N = tap count.
//
// AI-Hints:
//   - Pure in (boundary filter, interior filter, R) — memoize per triple.
//   - Pair with DyadicValues on the same R when assembling a full
//     boundary-corrected basis so the grids align slot-for-slot.
func BoundaryDyadicValues(b *filterbank.Boundary, f *filterbank.Interior, resolution int, opts ...Option) (*BoundarySamples, error) {
	// Validate inputs in fail-fast order.
	if b == nil || f == nil {
		return nil, scalingErrorf(opBoundaryDyadicValues, ErrNilFilter)
	}
	if resolution < 0 {
		return nil, scalingErrorf(opBoundaryDyadicValues, ErrNegativeResolution)
	}
	if b.VanishingMoments() != f.VanishingMoments() {
		return nil, scalingErrorf(opBoundaryDyadicValues, ErrFilterMismatch)
	}
	o := gatherOptions(opts...)

	grid, err := dyadic.NewGrid(b.Support(), resolution)
	if err != nil {
		return nil, scalingErrorf(opBoundaryDyadicValues, err)
	}

	// The interior table at full resolution feeds every level's spillover.
	interior, err := DyadicValues(f, resolution, opts...)
	if err != nil {
		return nil, scalingErrorf(opBoundaryDyadicValues, err)
	}

	// Phase A seeds level 0.
	ints, err := BoundaryIntegerValues(b, f, opts...)
	if err != nil {
		return nil, scalingErrorf(opBoundaryDyadicValues, err)
	}

	p := b.VanishingMoments()
	step := 1 << uint(resolution)
	rows := make([][]float64, p)
	tapRows := make([][]float64, p)
	for k := 0; k < p; k++ {
		rows[k] = make([]float64, grid.Count())
		for q := 0; q < len(ints[k]); q++ {
			rows[k][q*step] = ints[k][q]
		}
		// Row shape was validated at construction; the error is unreachable.
		if tapRows[k], err = b.Row(k); err != nil {
			return nil, scalingErrorf(opBoundaryDyadicValues, err)
		}
	}

	// Refine level by level; each level is a barrier.
	side := b.Side()
	for level := 1; level <= resolution; level++ {
		slots, lerr := grid.LevelSlots(level)
		if lerr != nil {
			return nil, scalingErrorf(opBoundaryDyadicValues, lerr)
		}
		ferr := fillSlots(o.workers, slots, func(s int) {
			for k := 0; k < p; k++ {
				rows[k][s] = refineBoundary(rows, tapRows, side, grid, interior.Grid, interior.Values, k, s, step)
			}
		})
		if ferr != nil {
			return nil, scalingErrorf(opBoundaryDyadicValues, ferr)
		}
	}

	return &BoundarySamples{Side: side, Grid: grid, Rows: rows}, nil
}

// refineBoundary applies the two-term boundary recursion for function k at
// slot s of the boundary grid, with step = 2^R.
//
// Self term: the family at 2x lives at slot 2s + A_b·2^R of the boundary
// table. Spillover term: interior tap m ≥ p reads the interior table at
// 2x−m (left) or 2x+m (right), i.e. slot 2s + (2A_b ∓ m − A_i)·2^R. Both
// reads go through explicit range predicates; a missing parent is a zero
// contribution. Parents always lie on completed coarser levels, so the
// function is safe under the within-level parallel fill.
func refineBoundary(
	rows, tapRows [][]float64,
	side filterbank.Side,
	bGrid, iGrid dyadic.Grid,
	iValues []float64,
	k, s, step int,
) float64 {
	row := tapRows[k]
	p := len(tapRows)
	var acc float64

	// Boundary self-interaction at 2x.
	self := 2*s + bGrid.Support().A()*step
	if bGrid.InRange(self) {
		for l := 0; l < p; l++ { // fixed function order for determinism
			acc += row[l] * rows[l][self]
		}
	}

	// Interior spillover from the interior-reaching tail; the side decides
	// whether the interior argument walks down (left) or up (right).
	shift := 2*bGrid.Support().A() - iGrid.Support().A()
	for m := p; m < len(row); m++ {
		var slot int
		if side == filterbank.Left {
			slot = 2*s + (shift-m)*step
		} else {
			slot = 2*s + (shift+m)*step
		}
		if iGrid.InRange(slot) {
			acc += row[m] * iValues[slot]
		}
	}

	return Sqrt2 * acc
}
