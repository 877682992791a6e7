// SPDX-License-Identifier: MIT

// Shared fixtures for the scaling tests: canonical filters with known
// closed-form values (Haar, Daubechies-4), a small synthetic boundary
// family with hand-checkable eigenstructure, and a stub solver for
// exercising the normalization and degeneracy paths in isolation.

package scaling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
)

const floatTol = 1e-9

// haarInterior builds the Haar filter: two equal taps on [0, 1].
func haarInterior(t *testing.T) *filterbank.Interior {
	t.Helper()
	sup, err := dyadic.NewSupport(0, 1)
	require.NoError(t, err)
	f, err := filterbank.NewInterior([]float64{1 / math.Sqrt2, 1 / math.Sqrt2}, sup)
	require.NoError(t, err)

	return f
}

// d4Interior builds the Daubechies-4 filter on [0, 3]. Its integer-point
// values are known in closed form: φ(1) = (1+√3)/2, φ(2) = (1−√3)/2.
func d4Interior(t *testing.T) *filterbank.Interior {
	t.Helper()
	s3 := math.Sqrt(3)
	taps := []float64{
		(1 + s3) / (4 * math.Sqrt2),
		(3 + s3) / (4 * math.Sqrt2),
		(3 - s3) / (4 * math.Sqrt2),
		(1 - s3) / (4 * math.Sqrt2),
	}
	sup, err := dyadic.NewSupport(0, 3)
	require.NoError(t, err)
	f, err := filterbank.NewInterior(taps, sup)
	require.NoError(t, err)

	return f
}

// haarLeftBoundary builds the p = 1 left family whose single function is
// the Haar indicator restricted to [0, 1].
func haarLeftBoundary(t *testing.T) *filterbank.Boundary {
	t.Helper()
	b, err := filterbank.NewBoundary(filterbank.Left, [][]float64{
		{1 / math.Sqrt2, 1 / math.Sqrt2},
	})
	require.NoError(t, err)

	return b
}

// syntheticBoundary builds a p = 2 family with a hand-checkable boundary
// matrix: √2 times the leading 2×2 taps is [[1, 0], [0.3, 0.5]], whose
// eigenvalue-1 eigenvector (1, 0.6) normalizes to (0.625, 0.375).
func syntheticBoundary(t *testing.T, side filterbank.Side) *filterbank.Boundary {
	t.Helper()
	b, err := filterbank.NewBoundary(side, [][]float64{
		{1 / math.Sqrt2, 0, 0.2},
		{0.3 / math.Sqrt2, 0.5 / math.Sqrt2, 0.1, -0.05, 0.15},
	})
	require.NoError(t, err)

	return b
}

// stubSolver returns a fixed vector (or error) regardless of the matrix,
// isolating normalization and degeneracy handling from the eigen backend.
type stubSolver struct {
	vec []float64
	err error
}

func (s *stubSolver) EigenvectorOne(_ *mat.Dense) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(s.vec))
	copy(out, s.vec)

	return out, nil
}
