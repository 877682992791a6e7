// Package wavelet is your numerical workbench for Daubechies scaling
// functions on finite domains — from raw filter taps to dense tables of
// basis-function samples at any dyadic resolution.
//
// 🚀 What is wavelet?
//
//	A focused, deterministic library that brings together:
//		• Filter descriptions: interior Daubechies filters & boundary-adapted families
//		• Dyadic grids: enumeration and index mapping of k/2^R positions in a support
//		• Fixed-point extraction: the eigenvalue-1 eigenvector of the dilation operator
//		• Interior evaluation: integer-point values refined level-by-level to resolution R
//		• Boundary evaluation: left/right edge-adapted families via a two-term recursion
//
// ✨ Why choose wavelet?
//
//   - Correct at the edges – boundary families get the same rigor as the interior case
//   - Deterministic – fixed loop orders, no global state, reproducible tables
//   - Explicit errors – sentinel errors matched with errors.Is, never silent fallbacks
//   - Extensible – the eigen backend is an injected interface, mock it in tests
//
// Under the hood, everything is organized in four subpackages:
//
//	dyadic/     — supports, dyadic-position grids & signed-position index mapping
//	filterbank/ — interior & boundary filter value types with capability accessors
//	fixpoint/   — eigenvalue-1 eigenvector extraction (gonum-backed, swappable)
//	scaling/    — dilation matrices, fixed points & resolution-R refinement (the core)
//
// Quick sketch of the data flow:
//
//	taps ──► dilation matrix ──► eigenvector (level 0) ──► level 1 ──► … ──► level R
//
// Start with scaling.DyadicValues for the interior case and
// scaling.BoundaryDyadicValues for the edge-adapted families.
package wavelet
