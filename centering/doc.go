// SPDX-License-Identifier: MIT

// Package centering re-expresses a sample of quaternion time series around
// its Fréchet mean and optionally rescales it in the tangent space.
//
// Two modes exist and must not be confused:
//
//   - by time point (default): at each index t the members are centered on
//     their pointwise mean μₜ (q ↦ μₜ⁻¹·q) and scaled by the spread sdₜ of
//     that column;
//   - by row: each member is centered on the mean of its own M points and
//     scaled by its own spread.
//
// Scaling keeps the direction of the tangent vector and divides its length:
// q' ↦ Exp(Log(q')/sd), where sd = sqrt(mean d(q', 1)²). A zero spread
// leaves the centered value untouched.
package centering
