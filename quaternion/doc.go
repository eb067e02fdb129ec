// SPDX-License-Identifier: MIT

// Package quaternion provides the manifold primitives used by every other
// squat package: unit quaternions, their logarithm and exponential maps,
// the geodesic (angular) distance and explicit double-cover sign handling.
//
// What is in here?
//
//	A unit quaternion q = (w, x, y, z) is a point on the 3-sphere and
//	represents a 3D rotation. q and −q represent the SAME rotation (double
//	cover), so every routine below either resolves the sign per pair or is
//	written to be invariant to it.
//
// Key functions:
//   - Normalize           unit rescale, ErrDegenerateQuaternion on ~zero norm
//   - Log / Exp           rotation vector <-> quaternion, half-angle convention
//   - LogAt / ExpAt       the same maps relative to a base point
//   - GeodesicDistance    2·arccos(|⟨q1,q2⟩|) in [0, π]
//   - AlignSign           flip q onto the hemisphere of a reference
//
// Conventions:
//
//	Coordinates are always ordered (w, x, y, z). Log returns θ·u where
//	θ = arccos(w) is the HALF rotation angle and u the rotation axis, so
//	Exp(v) = (cos‖v‖, sin‖v‖·v/‖v‖). With this convention:
//
//	  Exp(Log(q)) == q      for every unit q except q ≈ −1, which maps to +1
//	                        (the same rotation on the other sheet)
//	  Log(Exp(v)) == v      for ‖v‖ < π
//
// Algebra (products, conjugates, exp of pure quaternions) is delegated to
// gonum's num/quat package.
//
// Precision:
//
//	Rotations separated by an angle close to π sit near the cut locus of
//	the relative log map. Results there are valid but numerically unstable;
//	this is a known limit and is not special-cased.
package quaternion
