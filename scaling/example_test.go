// SPDX-License-Identifier: MIT

package scaling_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavelet/dyadic"
	"github.com/katalvlaran/wavelet/filterbank"
	"github.com/katalvlaran/wavelet/scaling"
)

// ExampleIntegerValues evaluates the Daubechies-4 scaling function at the
// integers of its support [0, 3].
func ExampleIntegerValues() {
	s3 := math.Sqrt(3)
	sup, _ := dyadic.NewSupport(0, 3)
	d4, _ := filterbank.NewInterior([]float64{
		(1 + s3) / (4 * math.Sqrt2),
		(3 + s3) / (4 * math.Sqrt2),
		(3 - s3) / (4 * math.Sqrt2),
		(1 - s3) / (4 * math.Sqrt2),
	}, sup)

	v, _ := scaling.IntegerValues(d4)
	fmt.Printf("%.4f %.4f %.4f %.4f\n", v[0], v[1], v[2], v[3])
	// Output:
	// 0.0000 1.3660 -0.3660 0.0000
}

// ExampleDyadicValues tabulates the Haar scaling function on the quarter
// grid of its support.
func ExampleDyadicValues() {
	sup, _ := dyadic.NewSupport(0, 1)
	haar, _ := filterbank.NewInterior([]float64{1 / math.Sqrt2, 1 / math.Sqrt2}, sup)

	table, _ := scaling.DyadicValues(haar, 2)
	fmt.Println("positions:", table.Positions())
	fmt.Println("values:   ", table.Values)
	// Output:
	// positions: [0 0.25 0.5 0.75 1]
	// values:    [1 1 1 1 0]
}

// ExampleBoundaryDyadicValues tabulates the single left-edge Haar boundary
// function on the half grid of its support.
func ExampleBoundaryDyadicValues() {
	sup, _ := dyadic.NewSupport(0, 1)
	haar, _ := filterbank.NewInterior([]float64{1 / math.Sqrt2, 1 / math.Sqrt2}, sup)
	left, _ := filterbank.NewBoundary(filterbank.Left, [][]float64{
		{1 / math.Sqrt2, 1 / math.Sqrt2},
	})

	table, _ := scaling.BoundaryDyadicValues(left, haar, 1)
	row := table.Rows[0]
	fmt.Printf("%s edge: %.2f %.2f %.2f\n", table.Side, row[0], row[1], row[2])
	// Output:
	// left edge: 1.00 1.00 0.00
}
