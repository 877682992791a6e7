// SPDX-License-Identifier: MIT

// Package scaling: matrix builders.
// These kernels turn filter taps into the linear operators whose
// eigenvalue-1 eigenvectors are the integer-point function values.

package scaling

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wavelet/filterbank"
)

// Sqrt2 is the single named √2 constant shared by every kernel in the
// package; the two-scale relation scales each contribution by it.
const Sqrt2 = math.Sqrt2

// DilationMatrix builds the N×N dyadic-dilation operator of an interior
// filter with taps h[0..N−1]: D[i,j] = √2·h[2i−j] wherever 2i−j is a valid
// tap index (zero-based; equivalently D[i,j] = √2·taps[2i−j] one-based),
// else 0. Row i expresses φ at the i'th integer of the support through φ at
// the other integers, so the vector of integer-point values is a fixed
// point of D.
//
// Inputs:
//   - f: interior filter description (non-nil).
//
// Returns:
//   - *mat.Dense: freshly allocated N×N operator.
//
// Errors:
//   - ErrNilFilter.
//
// Determinism:
//   - Fixed i→j fill order; identical output for identical taps.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func DilationMatrix(f *filterbank.Interior) (*mat.Dense, error) {
	// Validate the input before allocating.
	if f == nil {
		return nil, scalingErrorf(opDilationMatrix, ErrNilFilter)
	}

	taps := f.Taps()
	n := len(taps)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Tap index of the two-scale term linking integers i and j.
			t := 2*i - j
			if t >= 0 && t < n {
				d.Set(i, j, Sqrt2*taps[t])
			}
		}
	}

	return d, nil
}

// BoundaryMatrix builds the p×p boundary-coefficient operator of a boundary
// family: row k holds √2 times the first p taps of boundary function k —
// the family's self-interaction restricted to the boundary point. Its
// eigenvalue-1 eigenvector gives the family's values at 0.
//
// Inputs:
//   - b: boundary family description (non-nil).
//
// Returns:
//   - *mat.Dense: freshly allocated p×p operator.
//
// Errors:
//   - ErrNilFilter.
//
// Determinism:
//   - Fixed k→l fill order.
//
// Complexity:
//   - Time O(p²), Space O(p²).
func BoundaryMatrix(b *filterbank.Boundary) (*mat.Dense, error) {
	// Validate the input before allocating.
	if b == nil {
		return nil, scalingErrorf(opBoundaryMatrix, ErrNilFilter)
	}

	p := b.VanishingMoments()
	m := mat.NewDense(p, p, nil)
	for k := 0; k < p; k++ {
		// Row lengths were validated at construction; the error is unreachable.
		row, err := b.Row(k)
		if err != nil {
			return nil, scalingErrorf(opBoundaryMatrix, err)
		}
		for l := 0; l < p; l++ {
			m.Set(k, l, Sqrt2*row[l])
		}
	}

	return m, nil
}
