// SPDX-License-Identifier: MIT

// Package dyadic: the Grid enumeration type.
// A Grid is an immutable (support, resolution) pair validated once at
// construction; every method after that is panic-free and deterministic.

package dyadic

// MaxResolution bounds the refinement resolution so that slot arithmetic
// (numerators scaled by 2^R) stays far away from integer overflow even for
// wide supports. Practical evaluations use R ≤ 16; the bound is generous.
const MaxResolution = 30

// Grid enumerates the dyadic rationals k/2^R inside a support at a fixed
// resolution R and maps each position to a zero-based storage slot.
//
// Storage convention: slot s holds the position with numerator
// A·2^R + s, i.e. the real value A + s/2^R. Slot 0 is the support's lower
// bound, slot Count()−1 its upper bound.
//
// Behavior highlights:
//   - Positions at resolution R restricted to even slots coincide with the
//     full position set at resolution R−1 (strict refinement).
//   - All lookups are explicit predicates; nothing panics on a bad slot.
type Grid struct {
	sup  Support
	res  int // resolution R ≥ 0
	step int // 2^res, cached
}

// NewGrid validates (support, resolution) and returns the enumeration.
//
// Inputs:
//   - sup: the integer support interval [A, B].
//   - resolution: refinement resolution R; positions are k/2^R.
//
// Errors:
//   - ErrNegativeResolution when resolution < 0.
//   - ErrResolutionOverflow when resolution > MaxResolution.
//
// Complexity: O(1).
func NewGrid(sup Support, resolution int) (Grid, error) {
	// Validate the resolution bounds before touching any shift arithmetic.
	if resolution < 0 {
		return Grid{}, ErrNegativeResolution
	}
	if resolution > MaxResolution {
		return Grid{}, ErrResolutionOverflow
	}

	return Grid{sup: sup, res: resolution, step: 1 << uint(resolution)}, nil
}

// Support returns the underlying integer interval.
// Complexity: O(1).
func (g Grid) Support() Support { return g.sup }

// Resolution returns the refinement resolution R.
// Complexity: O(1).
func (g Grid) Resolution() int { return g.res }

// Count returns the number of dyadic positions in the support at
// resolution R: (B−A)·2^R + 1.
// Complexity: O(1).
func (g Grid) Count() int { return (g.sup.b-g.sup.a)*g.step + 1 }

// InRange reports whether slot s addresses a valid position.
// Explicit predicate by design: refinement recursions treat false as a
// zero contribution instead of raising an error.
// Complexity: O(1).
func (g Grid) InRange(s int) bool { return s >= 0 && s < g.Count() }

// Numerator returns the signed numerator k of the position k/2^R stored at
// slot s. The caller must ensure InRange(s); out-of-range slots still yield
// the affine extension (useful for parent-index arithmetic).
// Complexity: O(1).
func (g Grid) Numerator(s int) int { return g.sup.a*g.step + s }

// SlotOf maps a signed numerator k (position k/2^R) to its storage slot.
//
// Returns:
//   - int:  the zero-based slot.
//   - bool: false when the position lies outside the support.
//
// Complexity: O(1).
func (g Grid) SlotOf(numerator int) (int, bool) {
	s := numerator - g.sup.a*g.step
	return s, g.InRange(s)
}

// IntegerSlot maps an integer position x to its storage slot at this
// resolution (x stored at slot (x−A)·2^R).
//
// Returns:
//   - int:  the zero-based slot.
//   - bool: false when x lies outside [A, B].
//
// Complexity: O(1).
func (g Grid) IntegerSlot(x int) (int, bool) {
	if !g.sup.ContainsInt(x) {
		return 0, false
	}

	return (x - g.sup.a) * g.step, true
}

// Position returns the real value A + s/2^R stored at slot s.
// Complexity: O(1).
func (g Grid) Position(s int) float64 {
	return float64(g.sup.a) + float64(s)/float64(g.step)
}

// Positions returns all dyadic positions in the support at resolution R in
// ascending order, aligned slot-for-slot with any sample table built on
// this grid.
// Complexity: O(Count).
func (g Grid) Positions() []float64 {
	n := g.Count()
	out := make([]float64, n)
	for s := 0; s < n; s++ { // deterministic ascending order
		out[s] = g.Position(s)
	}

	return out
}

// LevelSlots returns the slots introduced exactly at refinement level L,
// in ascending order.
//
// Level semantics:
//   - L == 0: the integer points (slots that are multiples of 2^R).
//   - L ≥ 1:  the odd multiples of 1/2^L, i.e. slots s with
//     s ≡ 2^(R−L) (mod 2^(R−L+1)).
//
// The union of LevelSlots(0..R) partitions [0, Count).
//
// Errors:
//   - ErrLevelOutOfRange when L < 0 or L > R.
//
// Complexity: O(Count/2^(R−L)) — proportional to the slots returned.
func (g Grid) LevelSlots(level int) ([]int, error) {
	// Validate the level against the grid's resolution.
	if level < 0 || level > g.res {
		return nil, ErrLevelOutOfRange
	}

	n := g.Count()
	if level == 0 {
		// Integer points: every 2^R-th slot starting at 0.
		out := make([]int, 0, g.sup.Width())
		for s := 0; s < n; s += g.step {
			out = append(out, s)
		}

		return out, nil
	}

	// New positions at level L: first at 2^(R−L), then every 2^(R−L+1).
	first := 1 << uint(g.res-level)
	stride := first << 1
	out := make([]int, 0, (n-first+stride-1)/stride)
	for s := first; s < n; s += stride {
		out = append(out, s)
	}

	return out, nil
}
