// SPDX-License-Identifier: MIT

// Package filterbank: filter value types and their capability accessors.
// Interior and Boundary are immutable after construction; constructors copy
// their inputs and accessors copy their outputs, so no caller can alias the
// internal state of a filter shared across evaluations.

package filterbank

import (
	"math"

	"github.com/katalvlaran/wavelet/dyadic"
)

// Side discriminates the domain edge a boundary family is adapted to.
//
//   - Left  — functions supported on [0, 2p−1]; the interior tail of row k
//     reaches rightwards (arguments 2x − m).
//   - Right — functions supported on [−(2p−1), 0]; the tail reaches
//     leftwards (arguments 2x + m).
type Side int

const (
	// Left marks a family adapted to the left edge of the domain.
	Left Side = iota

	// Right marks a family adapted to the right edge of the domain.
	Right
)

// String implements fmt.Stringer for diagnostics.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the declared enum values.
func (s Side) valid() bool { return s == Left || s == Right }

// Interior is a single two-scale filter: an ordered tap sequence h[0..N−1]
// over an integer support [A, B] with B−A+1 == N. Tap t translates by A+t in
// the refinement equation φ(x) = √2·Σ_t h[t]·φ(2x−(A+t)).
//
// The vanishing-moment count is p = N/2 (Daubechies convention).
type Interior struct {
	taps    []float64
	sup     dyadic.Support
	moments int
}

// NewInterior validates and freezes an interior filter description.
//
// Inputs:
//   - taps: ordered coefficient sequence, length 2p, all finite.
//   - sup:  integer support [A, B] with width equal to len(taps).
//
// Errors:
//   - ErrEmptyTaps, ErrOddTapCount, ErrSupportWidth, ErrNotFinite.
//
// Complexity: O(N) validation and copy.
func NewInterior(taps []float64, sup dyadic.Support) (*Interior, error) {
	// Validate the tap count first: Daubechies filters carry 2p ≥ 2 taps.
	if len(taps) < 2 {
		return nil, ErrEmptyTaps
	}
	if len(taps)%2 != 0 {
		return nil, ErrOddTapCount
	}
	// Each tap must translate to exactly one integer of the support.
	if sup.Width() != len(taps) {
		return nil, ErrSupportWidth
	}
	// Numeric policy: coefficients must be finite.
	if err := validateFinite(taps); err != nil {
		return nil, err
	}

	// Freeze a private copy; the caller keeps no alias into the filter.
	own := make([]float64, len(taps))
	copy(own, taps)

	return &Interior{taps: own, sup: sup, moments: len(taps) / 2}, nil
}

// Taps returns a fresh copy of the ordered coefficient sequence.
// Complexity: O(N).
func (f *Interior) Taps() []float64 {
	out := make([]float64, len(f.taps))
	copy(out, f.taps)

	return out
}

// Len returns the tap count N.
// Complexity: O(1).
func (f *Interior) Len() int { return len(f.taps) }

// Support returns the integer support interval [A, B].
// Complexity: O(1).
func (f *Interior) Support() dyadic.Support { return f.sup }

// VanishingMoments returns p = N/2.
// Complexity: O(1).
func (f *Interior) VanishingMoments() int { return f.moments }

// Boundary is a family of p boundary-adapted two-scale filters for one
// domain edge. Row k (0 ≤ k < p) describes boundary function k: its first p
// taps weight the family's self-interaction φᵇ_l(2x), and the remaining
// 2k+1 taps (indices p..p+2k) weight interior translates.
//
// The family support is derived from the side: [0, 2p−1] for Left and
// [−(2p−1), 0] for Right; boundary function k itself lives on the inner
// p+k+1 integers of that interval.
type Boundary struct {
	side    Side
	rows    [][]float64
	sup     dyadic.Support
	moments int
}

// NewBoundary validates and freezes a boundary family description.
//
// Inputs:
//   - side: Left or Right.
//   - rows: p tap sequences; row k must have length p+2k+1, all finite.
//
// Errors:
//   - ErrUnknownSide, ErrEmptyFamily, ErrRowLength, ErrNotFinite.
//
// Complexity: O(p²) validation and copy (total tap count is p(2p+... ) = Θ(p²)).
func NewBoundary(side Side, rows [][]float64) (*Boundary, error) {
	// Validate the enum before anything else; Side is an explicit branch
	// point downstream, never duck-typed.
	if !side.valid() {
		return nil, ErrUnknownSide
	}
	p := len(rows)
	if p == 0 {
		return nil, ErrEmptyFamily
	}

	// Validate shape and numeric policy row by row, then freeze copies.
	own := make([][]float64, p)
	for k := 0; k < p; k++ {
		if len(rows[k]) != p+2*k+1 {
			return nil, ErrRowLength
		}
		if err := validateFinite(rows[k]); err != nil {
			return nil, err
		}
		own[k] = make([]float64, len(rows[k]))
		copy(own[k], rows[k])
	}

	// Derive the family support from the side; NewSupport cannot fail here
	// because p ≥ 1 guarantees a well-ordered interval.
	var sup dyadic.Support
	if side == Left {
		sup, _ = dyadic.NewSupport(0, 2*p-1)
	} else {
		sup, _ = dyadic.NewSupport(-(2*p - 1), 0)
	}

	return &Boundary{side: side, rows: own, sup: sup, moments: p}, nil
}

// Side returns the edge this family is adapted to.
// Complexity: O(1).
func (b *Boundary) Side() Side { return b.side }

// VanishingMoments returns p, which is also the family size.
// Complexity: O(1).
func (b *Boundary) VanishingMoments() int { return b.moments }

// Support returns the family's union support interval.
// Complexity: O(1).
func (b *Boundary) Support() dyadic.Support { return b.sup }

// Row returns a fresh copy of the tap sequence of boundary function k.
//
// Errors:
//   - ErrRowIndex when k lies outside [0, p).
//
// Complexity: O(p+2k+1).
func (b *Boundary) Row(k int) ([]float64, error) {
	if k < 0 || k >= b.moments {
		return nil, ErrRowIndex
	}
	out := make([]float64, len(b.rows[k]))
	copy(out, b.rows[k])

	return out, nil
}

// validateFinite rejects NaN and ±Inf coefficients.
func validateFinite(taps []float64) error {
	for _, v := range taps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}

	return nil
}
