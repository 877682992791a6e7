// SPDX-License-Identifier: MIT

// Package scaling: result surface types.
// Sample tables are plain value containers: the evaluators allocate them
// once, hand over exclusive ownership, and never retain an alias. Exported
// fields keep downstream transform code free of accessor ceremony.

package scaling

import (
	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
)

// Samples is the dense table of an interior scaling function over its
// support at one resolution. Values[s] holds φ at Grid.Position(s).
type Samples struct {
	// Grid fixes the (support, resolution) enumeration the table is built on.
	Grid dyadic.Grid

	// Values holds one sample per grid slot, ascending by position.
	Values []float64
}

// Resolution returns the refinement resolution R of the table.
// Complexity: O(1).
func (s *Samples) Resolution() int { return s.Grid.Resolution() }

// Positions returns the dyadic positions aligned slot-for-slot with Values,
// ready for plotting or transform use.
// Complexity: O(len(Values)).
func (s *Samples) Positions() []float64 { return s.Grid.Positions() }

// BoundarySamples is the dense table of a boundary family over its union
// support at one resolution. Rows[k][s] holds boundary function k at
// Grid.Position(s); the row count always equals the family's
// vanishing-moment count p.
type BoundarySamples struct {
	// Side records which edge the family is adapted to.
	Side filterbank.Side

	// Grid fixes the (support, resolution) enumeration the table is built on.
	Grid dyadic.Grid

	// Rows holds one sample row per boundary function, index k = 0..p−1.
	Rows [][]float64
}

// Functions returns the number of boundary functions p in the table.
// Complexity: O(1).
func (b *BoundarySamples) Functions() int { return len(b.Rows) }

// Resolution returns the refinement resolution R of the table.
// Complexity: O(1).
func (b *BoundarySamples) Resolution() int { return b.Grid.Resolution() }

// Positions returns the dyadic positions aligned slot-for-slot with every
// row of the table.
// Complexity: O(Grid.Count()).
func (b *BoundarySamples) Positions() []float64 { return b.Grid.Positions() }
