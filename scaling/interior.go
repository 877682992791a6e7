// SPDX-License-Identifier: MIT

// Package scaling: the interior evaluator.
// Integer-point values come from the fixed point of the dilation matrix;
// all finer dyadic values follow from the two-scale relation, one level at
// a time.

package scaling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
)

// IntegerValues computes the interior scaling function at the integer
// points of its support.
//
// Implementation:
//   - Stage 1: validate the filter; short-circuit the degenerate Haar case
//     (p == 1) to its closed form (1, 0) — the 2×2 dilation matrix has a
//     repeated eigenvalue there and must not be eigen-solved.
//   - Stage 2: build the dilation matrix and extract its eigenvalue-1
//     eigenvector via the configured solver.
//   - Stage 3: L1-normalize (divide by the entry sum so the values sum to
//     1, which also fixes the eigenvector's arbitrary sign), then force
//     both support endpoints to exactly 0 (boundary-vanishing convention
//     for p ≥ 2).
//
// Inputs:
//   - f:    interior filter description (non-nil).
//   - opts: WithTolerance, WithSolver.
//
// Returns:
//   - []float64: one value per integer of the support, ascending; the
//     caller owns the slice.
//
// Errors:
//   - ErrNilFilter.
//   - fixpoint.ErrDegenerateRefinement (no simple eigenvalue 1, or an
//     entry sum too close to 0 for the normalization to be defined).
//   - fixpoint.ErrEigenFailed (backend non-convergence).
//
// Determinism:
//   - Pure function of (taps, tolerance); stable across runs.
//
// Complexity:
//   - Time O(N³) for the eigen-solve, Space O(N²).
func IntegerValues(f *filterbank.Interior, opts ...Option) ([]float64, error) {
	// Validate the filter before touching options or matrices.
	if f == nil {
		return nil, scalingErrorf(opIntegerValues, ErrNilFilter)
	}
	o := gatherOptions(opts...)

	// Haar (p == 1): the indicator of [A, A+1) sampled at the two integers.
	if f.VanishingMoments() == 1 {
		return []float64{1, 0}, nil
	}

	// Build the dilation operator and extract its fixed point.
	d, err := DilationMatrix(f)
	if err != nil {
		return nil, scalingErrorf(opIntegerValues, err)
	}
	v, err := o.solver.EigenvectorOne(d)
	if err != nil {
		return nil, scalingErrorf(opIntegerValues, err)
	}

	// L1 normalization: the integer samples of a scaling function form a
	// partition of unity, Σ_n φ(n) = 1. A near-zero entry sum leaves the
	// normalization undefined — report it, never divide through.
	var sum float64
	for _, x := range v {
		sum += x
	}
	if math.Abs(sum) <= o.tol {
		return nil, scalingErrorf(opIntegerValues,
			fmt.Errorf("entry sum %g too small to normalize: %w", sum, ErrDegenerateRefinement))
	}
	for i := range v {
		v[i] /= sum
	}

	// Boundary-vanishing convention: φ is continuous for p ≥ 2 and vanishes
	// at both support endpoints; pin the samples to exact zeros.
	v[0] = 0
	v[len(v)-1] = 0

	return v, nil
}

// DyadicValues computes the interior scaling function at every dyadic
// position of its support up to resolution R.
//
// Implementation:
//   - Stage 1: validate (filter non-nil, R ≥ 0) and build the grid.
//     The Haar case (p == 1) returns the indicator closed form directly at
//     any resolution: 1 everywhere except the right support endpoint.
//   - Stage 2: seed level 0 from IntegerValues, storing integer q of the
//     support at slot q·2^R.
//   - Stage 3: for L = 1..R fill the slots introduced at level L with
//     φ(x) = √2·Σ_t h[t]·φ(2x−(A+t)); the parent of slot s under tap t is
//     slot 2s − t·2^R, always a completed coarser level, and out-of-range
//     parents contribute zero via an explicit predicate. Levels are strict
//     barriers; within a level the fill may fan out over WithWorkers
//     goroutines.
//
// Inputs:
//   - f:          interior filter description (non-nil).
//   - resolution: refinement resolution R ≥ 0.
//   - opts:       WithTolerance, WithSolver, WithWorkers.
//
// Returns:
//   - *Samples: dense table over the support, exclusively owned by the
//     caller.
//
// Errors:
//   - ErrNilFilter, ErrNegativeResolution.
//   - dyadic.ErrResolutionOverflow (R beyond slot-arithmetic headroom).
//   - Propagated IntegerValues errors.
//
// Determinism:
//   - Fixed level order; within a level every slot's accumulation runs in
//     fixed tap order, so results are identical with any worker count.
//
// Complexity:
//   - Time O(N³ + N·2^R·N) = O(N³ + N²·2^R), Space O(N·2^R).
//
// AI-Hints:
//   - Results are pure in (filter, R): memoize if you evaluate one filter
//     at several resolutions, or derive coarser tables by restriction to
//     even slots instead of re-evaluating.
func DyadicValues(f *filterbank.Interior, resolution int, opts ...Option) (*Samples, error) {
	// Validate inputs in fail-fast order.
	if f == nil {
		return nil, scalingErrorf(opDyadicValues, ErrNilFilter)
	}
	if resolution < 0 {
		return nil, scalingErrorf(opDyadicValues, ErrNegativeResolution)
	}
	o := gatherOptions(opts...)

	grid, err := dyadic.NewGrid(f.Support(), resolution)
	if err != nil {
		return nil, scalingErrorf(opDyadicValues, err)
	}
	values := make([]float64, grid.Count())

	// Haar (p == 1): indicator of [A, A+1) — exact at every resolution.
	if f.VanishingMoments() == 1 {
		for s := 0; s < len(values)-1; s++ {
			values[s] = 1
		}

		return &Samples{Grid: grid, Values: values}, nil
	}

	// Seed level 0: integer q of the support lives at slot q·2^R.
	iv, err := IntegerValues(f, opts...)
	if err != nil {
		return nil, scalingErrorf(opDyadicValues, err)
	}
	step := 1 << uint(resolution)
	for q := 0; q < len(iv); q++ {
		values[q*step] = iv[q]
	}

	// Refine level by level; each level is a barrier.
	taps := f.Taps()
	for level := 1; level <= resolution; level++ {
		slots, lerr := grid.LevelSlots(level)
		if lerr != nil {
			return nil, scalingErrorf(opDyadicValues, lerr)
		}
		ferr := fillSlots(o.workers, slots, func(s int) {
			values[s] = refineInterior(values, taps, grid, s, step)
		})
		if ferr != nil {
			return nil, scalingErrorf(opDyadicValues, ferr)
		}
	}

	return &Samples{Grid: grid, Values: values}, nil
}

// refineInterior applies the two-scale relation at slot s: the parent of s
// under tap t is slot 2s − t·2^R, which always belongs to a completed
// coarser level; parents outside the support contribute zero.
func refineInterior(values, taps []float64, grid dyadic.Grid, s, step int) float64 {
	var acc float64
	for t := 0; t < len(taps); t++ { // fixed tap order for determinism
		parent := 2*s - t*step
		if grid.InRange(parent) {
			acc += taps[t] * values[parent]
		}
	}

	return Sqrt2 * acc
}
