// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix layer shared by the
// dissimilarity code: DTW cost and accumulated-cost grids, and the square
// export of a distance object.
//
// Dense is row-major with the explicit offset i*cols + j. Public accessors
// return sentinel errors instead of panicking; validators check the
// structural properties a dissimilarity matrix must have (square,
// symmetric, non-negative, zero diagonal).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - Validators: O(r*c), no allocations.
package matrix
