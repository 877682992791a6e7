// SPDX-License-Identifier: MIT
// Package filterbank: sentinel error set.
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package filterbank

import "errors"

var (
	// ErrEmptyTaps indicates an interior filter with fewer than two taps.
	ErrEmptyTaps = errors.New("filterbank: interior filter needs at least two taps")

	// ErrOddTapCount indicates an interior tap count that is not even;
	// a Daubechies filter with p vanishing moments carries exactly 2p taps.
	ErrOddTapCount = errors.New("filterbank: interior tap count must be even")

	// ErrSupportWidth indicates a support whose integer width differs from
	// the tap count — every tap must translate to one integer of the support.
	ErrSupportWidth = errors.New("filterbank: support width must equal tap count")

	// ErrNotFinite signals a NaN or ±Inf coefficient; all tap values must be
	// finite under the numeric policy.
	ErrNotFinite = errors.New("filterbank: NaN or Inf coefficient")

	// ErrEmptyFamily indicates a boundary family with no rows; the family
	// size equals the vanishing-moment count p ≥ 1.
	ErrEmptyFamily = errors.New("filterbank: boundary family must have at least one row")

	// ErrRowLength indicates a boundary row k whose length is not p+2k+1
	// (p boundary taps plus an interior tail of 2k+1 taps).
	ErrRowLength = errors.New("filterbank: boundary row length must be p+2k+1")

	// ErrUnknownSide indicates a Side value outside {Left, Right}.
	ErrUnknownSide = errors.New("filterbank: unknown boundary side")

	// ErrRowIndex indicates a boundary-function index outside [0, p).
	ErrRowIndex = errors.New("filterbank: boundary row index out of range")
)
