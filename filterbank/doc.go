// Package filterbank describes the two-scale filters consumed by the
// evaluation kernel: interior Daubechies filters and boundary-adapted
// filter families.
//
// The filterbank package provides:
//
//   - Interior — a single ordered tap sequence with its integer support;
//     the vanishing-moment count p is len(taps)/2 per the Daubechies family.
//   - Boundary — a family of p tap sequences (one per boundary scaling
//     function), tagged with a Side; row k carries p boundary-interaction
//     taps followed by a 2k+1 long interior-reaching tail.
//   - Side — the Left/Right edge discriminant, an explicit enum rather
//     than duck-typed behavior.
//
// The package only *describes* filters handed to it — generation or design
// of coefficient values is out of scope. Constructors validate shape
// (tap counts, row lengths, finiteness) once; values are immutable after
// construction and every accessor returns defensive copies.
//
// See the scaling package for how these descriptions are evaluated.
package filterbank
