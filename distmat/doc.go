// SPDX-License-Identifier: MIT

// Package distmat computes and stores pairwise dissimilarities of a sample
// of quaternion time series.
//
// A Distance holds the C(N,2) entries of the strictly lower triangle in
// canonical order: for 0-based i < j the pair (i, j) lives at
//
//	k = N·i − i(i+1)/2 + (j − i − 1)
//
// which is the 0-based form of the 1-based k = N(i−1) − i(i−1)/2 + j − i.
// The diagonal is implicitly zero and symmetry holds by construction.
//
// Pairwise fans the pairs out over a bounded errgroup; each result is
// written to its pre-assigned slot, so the layout never depends on
// completion order or on the number of workers.
package distmat
