// Package filterbank_test contains unit tests for filter descriptions.
package filterbank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
)

// haarTaps returns the two-tap Haar sequence (1/√2, 1/√2).
func haarTaps() []float64 {
	h := 1.0 / math.Sqrt2
	return []float64{h, h}
}

func mustSupport(t *testing.T, a, b int) dyadic.Support {
	t.Helper()
	s, err := dyadic.NewSupport(a, b)
	require.NoError(t, err)
	return s
}

// TestNewInterior_Validation exercises every constructor rejection path.
func TestNewInterior_Validation(t *testing.T) {
	sup01 := mustSupport(t, 0, 1)

	_, err := filterbank.NewInterior(nil, sup01)
	assert.ErrorIs(t, err, filterbank.ErrEmptyTaps)

	_, err = filterbank.NewInterior([]float64{1}, sup01)
	assert.ErrorIs(t, err, filterbank.ErrEmptyTaps)

	_, err = filterbank.NewInterior([]float64{1, 2, 3}, mustSupport(t, 0, 2))
	assert.ErrorIs(t, err, filterbank.ErrOddTapCount)

	_, err = filterbank.NewInterior(haarTaps(), mustSupport(t, 0, 3))
	assert.ErrorIs(t, err, filterbank.ErrSupportWidth)

	_, err = filterbank.NewInterior([]float64{math.NaN(), 1}, sup01)
	assert.ErrorIs(t, err, filterbank.ErrNotFinite)

	_, err = filterbank.NewInterior([]float64{math.Inf(1), 1}, sup01)
	assert.ErrorIs(t, err, filterbank.ErrNotFinite)
}

// TestNewInterior_Accessors checks derived moments and defensive copies.
func TestNewInterior_Accessors(t *testing.T) {
	taps := haarTaps()
	f, err := filterbank.NewInterior(taps, mustSupport(t, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, f.VanishingMoments(), "Haar has p=1")
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 0, f.Support().A())
	assert.Equal(t, 1, f.Support().B())

	// Mutating the input after construction must not leak into the filter.
	taps[0] = 42
	assert.InDelta(t, 1.0/math.Sqrt2, f.Taps()[0], 1e-15)

	// Mutating the accessor's result must not leak either.
	got := f.Taps()
	got[1] = -7
	assert.InDelta(t, 1.0/math.Sqrt2, f.Taps()[1], 1e-15)
}

// TestNewBoundary_Validation exercises family shape rules.
func TestNewBoundary_Validation(t *testing.T) {
	_, err := filterbank.NewBoundary(filterbank.Side(9), [][]float64{{1, 2}})
	assert.ErrorIs(t, err, filterbank.ErrUnknownSide)

	_, err = filterbank.NewBoundary(filterbank.Left, nil)
	assert.ErrorIs(t, err, filterbank.ErrEmptyFamily)

	// p=2 family: row 0 needs 3 taps, row 1 needs 5.
	_, err = filterbank.NewBoundary(filterbank.Left, [][]float64{
		{1, 2, 3},
		{1, 2, 3, 4}, // one tap short
	})
	assert.ErrorIs(t, err, filterbank.ErrRowLength)

	_, err = filterbank.NewBoundary(filterbank.Right, [][]float64{
		{math.NaN(), 1},
	})
	assert.ErrorIs(t, err, filterbank.ErrNotFinite)
}

// TestNewBoundary_DerivedSupport checks side-dependent supports and sizes.
func TestNewBoundary_DerivedSupport(t *testing.T) {
	left, err := filterbank.NewBoundary(filterbank.Left, [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6, 0.7, 0.8},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, left.VanishingMoments())
	assert.Equal(t, 0, left.Support().A())
	assert.Equal(t, 3, left.Support().B(), "left family lives on [0, 2p−1]")
	assert.Equal(t, "left", left.Side().String())

	right, err := filterbank.NewBoundary(filterbank.Right, [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6, 0.7, 0.8},
	})
	require.NoError(t, err)
	assert.Equal(t, -3, right.Support().A(), "right family lives on [−(2p−1), 0]")
	assert.Equal(t, 0, right.Support().B())
	assert.Equal(t, "right", right.Side().String())
}

// TestBoundary_Row checks row access bounds and copy semantics.
func TestBoundary_Row(t *testing.T) {
	rows := [][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6, 0.7, 0.8},
	}
	b, err := filterbank.NewBoundary(filterbank.Left, rows)
	require.NoError(t, err)

	_, err = b.Row(-1)
	assert.ErrorIs(t, err, filterbank.ErrRowIndex)
	_, err = b.Row(2)
	assert.ErrorIs(t, err, filterbank.ErrRowIndex)

	r1, err := b.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4, 0.5, 0.6, 0.7, 0.8}, r1)

	// Defensive copy: mutating the returned row leaves the family intact.
	r1[0] = 99
	again, err := b.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 0.4, again[0])
}
