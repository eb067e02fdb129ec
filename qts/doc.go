// SPDX-License-Identifier: MIT

// Package qts defines quaternion time series (QTS) and samples of them,
// together with the series-level preprocessing used before statistics and
// dissimilarities are computed.
//
// A QTS is an ordered sequence of (time, unit quaternion) pairs with
// strictly increasing time. A Sample is an ordered collection of QTS; for
// pointwise statistics all members must share the same time grid, and a
// mismatch is reported as ErrGridMismatch rather than interpolated.
//
// Preprocessing helpers:
//   - Normalize      re-normalize every rotation to unit norm
//   - Hemispherize   enforce sign continuity along the series
//   - Log / Exp      whole-series tangent representation at the identity
//   - Reorient       express the series relative to its first rotation
//   - Resample       slerp onto a uniform grid (never applied implicitly)
//   - Derivative     relative rotations between consecutive samples
//   - Random         Gaussian perturbations in tangent space
//   - ReadCSV / WriteCSV  the tabular (time, w, x, y, z) representation
//
// Values are copied on the way in and out: no function mutates its input.
package qts
