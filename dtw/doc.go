// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) alignments over an
// arbitrary local-cost matrix, with configurable step patterns, an optional
// Sakoe–Chiba window, path recovery and distance normalization.
//
// What is DTW?
//
//	DTW finds the monotone alignment between two sequences that minimizes
//	the accumulated local cost, warping the time axis of one sequence
//	against the other. Callers supply the N×M cost matrix; for quaternion
//	series it holds geodesic distances.
//
// Step patterns:
//
//	A StepPattern lists the allowed moves (Δi, Δj) and their weights. The
//	recurrence is
//	  D(0,0) = cost(0,0)
//	  D(i,j) = min over steps of D(i−Δi, j−Δj) + weight·cost(i,j)
//	Symmetric1 is the classic unweighted pattern; Symmetric2 weighs the
//	diagonal twice and is normalizable by N+M; Asymmetric advances the
//	first sequence at every step and is normalizable by N.
//
// Key features:
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - rolling mode (TwoRows): O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w for w > 0, none otherwise)
//   - slope penalty added to every non-diagonal move
//   - normalization by the pattern's normalization factor
//
// Unreachable end cells (window too narrow, Asymmetric with M > 2N−1)
// yield a +Inf distance; requesting the path then fails with
// ErrNoFeasiblePath.
//
// Performance:
//
//   - Time:   O(N·M·S) for S steps in the pattern
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
