// SPDX-License-Identifier: MIT

// Package squat computes statistics and pairwise dissimilarities over
// samples of quaternion time series (QTS): sequences of unit quaternions
// sampled at discrete time points, typically orientation trajectories
// recorded by inertial sensors.
//
// 🚀 What is squat?
//
//	A small numerical library and command that brings together:
//		• Manifold primitives: exp/log maps, geodesic distance, double-cover signs
//		• Fréchet statistics: pointwise geometric mean and median of a sample
//		• Tangent-space centering and scaling, with the inverse transform
//		• Dissimilarities: L2, Pearson and DTW over geodesic costs
//		• Distance matrices: parallel pairwise orchestration, YAML and binary I/O
//
// Everything is organized in flat subpackages:
//
//	quaternion/ — Quaternion and Vec3, Log/Exp, GeodesicDistance, AlignSign
//	qts/        — QTS and Sample, grid checks, hemispherize, resample, CSV
//	frechet/    — weighted fixed-point solver, Mean/Median, series and moving average
//	centering/  — CenterAndScale by time point or by row, Uncenter
//	dtw/        — step patterns and the DTW dynamic program over a cost matrix
//	distance/   — Metric, Dissimilarity, DTWAlign
//	distmat/    — Distance structure, Pairwise, Save/Load
//	matrix/     — dense matrix and dissimilarity validators
//	alignment/  — boundary to an external clustering + alignment routine
//	logging/    — structured logging on zerolog
//	cmd/squat/  — mean, median, center, dist and dtw subcommands
//
// Quick example:
//
//	sample := qts.Sample{a, b, c}                  // same time grid
//	mean, _ := frechet.MeanSeries(sample, frechet.DefaultOptions())
//	d, _ := distmat.Pairwise(ctx, sample, distance.DTW, distmat.DefaultOptions())
//
//	go get github.com/katalvlaran/squat
package squat
