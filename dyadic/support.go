// SPDX-License-Identifier: MIT

// Package dyadic: the Support domain type.
// This file intentionally contains ONLY the integer interval type and its
// O(1) accessors; grid enumeration lives in grid.go per the global
// conventions (one concern per file).

package dyadic

// Support is a closed integer interval [A, B] bounding the compact support
// of a scaling function. It sizes all sample tables and anchors the
// signed-position → slot mapping.
//
// Invariant (enforced by NewSupport): A ≤ B.
type Support struct {
	a, b int // interval bounds, a ≤ b
}

// NewSupport builds the closed interval [a, b].
//
// Returns:
//   - Support: the validated interval.
//
// Errors:
//   - ErrInvalidInterval when a > b.
//
// Complexity: O(1).
func NewSupport(a, b int) (Support, error) {
	// Validate ordering; a single-point interval is allowed.
	if a > b {
		return Support{}, ErrInvalidInterval
	}

	return Support{a: a, b: b}, nil
}

// A returns the lower bound of the interval.
// Complexity: O(1).
func (s Support) A() int { return s.a }

// B returns the upper bound of the interval.
// Complexity: O(1).
func (s Support) B() int { return s.b }

// Width returns the number of integer points in [A, B], i.e. B−A+1.
// Complexity: O(1).
func (s Support) Width() int { return s.b - s.a + 1 }

// ContainsInt reports whether the integer x lies inside [A, B].
// Explicit predicate by design: callers treat false as a zero contribution.
// Complexity: O(1).
func (s Support) ContainsInt(x int) bool { return x >= s.a && x <= s.b }
