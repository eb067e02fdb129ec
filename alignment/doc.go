// SPDX-License-Identifier: MIT

// Package alignment is the boundary between squat and an external
// curve-alignment / clustering routine.
//
// squat does not search for warpings or clusters itself. It prepares the
// input of such a routine and consumes its output:
//
//   - NewTangentArray turns a sample into a 3-channel log-map array on the
//     shared time grid (every series hemispherized first).
//   - An Aligner implementation clusters and aligns that array.
//   - CentersToQTS maps the returned tangent-space centers back to
//     quaternion time series through the exponential map.
//
// BestOf runs several independent restarts of an Aligner in parallel and
// keeps the one with the smallest total within-cluster dissimilarity.
package alignment
