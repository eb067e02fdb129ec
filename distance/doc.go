// SPDX-License-Identifier: MIT

// Package distance computes scalar dissimilarities between two quaternion
// time series.
//
// Metrics:
//   - L2: the summed squared geodesic distance in time, Σᵢ d(aᵢ, bᵢ)².
//     Both series must share a time grid.
//   - Pearson: 1 − the mean Pearson correlation of the three channels of
//     the log series, clamped at 0. The first series is hemispherized and
//     every point of the second is moved onto the sheet of its partner
//     first. Lengths must match.
//   - DTW: dynamic time warping over the geodesic cost matrix with a
//     configurable step pattern (Symmetric2 and normalized by default).
//     Series may have different lengths.
//
// Series on different grids are never interpolated implicitly; resample
// first with qts.Resample.
package distance
