// SPDX-License-Identifier: MIT

// Package frechet computes Fréchet means and medians of unit quaternions,
// pointwise across a sample of quaternion time series.
//
// Both statistics are produced by one weighted fixed-point iteration on S³:
//
//	μ ← μ · Exp( Σ wᵢ · Log(μ⁻¹ · qᵢ') ),   Σ wᵢ = 1
//
// where qᵢ' is qᵢ flipped onto μ's hemisphere. Uniform weights give the
// Karcher (Fréchet) mean; Weiszfeld weights 1/d(qᵢ, μ) give the geometric
// median. Iteration starts at the first input and stops once the step norm
// drops below Options.Tolerance or after Options.MaxIterations steps.
//
// Hitting the iteration cap is not fatal: the last iterate is returned with
// Converged=false, Result.Err reports ErrNotConverged, and a warning is
// written to the configured logger.
//
// Precision: for rotations close to π apart the hemisphere choice becomes
// unstable and the mean is only defined up to that ambiguity.
//
// Complexity: O(K·I) per statistic for K inputs and I iterations;
// MeanSeries and MedianSeries repeat it for each of the M time points.
package frechet
