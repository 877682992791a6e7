// Package dyadic enumerates dyadic rational positions k/2^R inside an
// integer support interval and maps them to zero-based storage slots.
//
// The dyadic package provides:
//
//   - Support — a closed integer interval [A, B] bounding a compact support.
//   - Grid — a validated (support, resolution) pair with deterministic
//     enumeration of all positions, per-level position subsets, and an
//     explicit signed-position → slot index mapping.
//
// Positions at resolution R are a strict refinement of the positions at
// resolution R−1: every slot that exists at R−1 maps to an even slot at R.
// Level L (1 ≤ L ≤ R) introduces exactly the odd multiples of 1/2^L; level 0
// holds the integer points.
//
// All range checks are explicit boolean predicates — out-of-range lookups
// report ok=false instead of panicking, so refinement recursions can treat
// missing parents as zero contributions.
//
// See the scaling package examples for usage patterns.
package dyadic
