// SPDX-License-Identifier: MIT

package quaternion

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Normalize rescales q to unit norm.
//
// Errors:
//   - ErrDegenerateQuaternion if ‖q‖ < Epsilon (or q is not finite).
//
// Complexity: O(1).
func Normalize(q Quaternion) (Quaternion, error) {
	if !q.IsFinite() {
		return Quaternion{}, ErrDegenerateQuaternion
	}
	n := q.Norm()
	if n < Epsilon {
		return Quaternion{}, ErrDegenerateQuaternion
	}

	return FromNumber(quat.Scale(1/n, q.Number())), nil
}

// Log maps a unit quaternion to its rotation vector at the identity.
//
// Implementation:
//   - Stage 1: θ = arccos(clamp(w, −1, 1)).
//   - Stage 2: if ‖(x,y,z)‖ < Epsilon return the zero vector (removable
//     singularity at θ = 0).
//   - Stage 3: return θ·(x,y,z)/‖(x,y,z)‖.
//
// The result is defined up to the q/−q ambiguity; callers that need a
// continuous branch along a series must hemispherize first.
func Log(q Quaternion) Vec3 {
	v := q.Vector()
	vn := v.Norm()
	if vn < Epsilon {
		return Vec3{}
	}
	theta := math.Acos(clamp(q.W, -1, 1))

	return v.Scale(theta / vn)
}

// Exp is the inverse of Log: for θ = ‖v‖ it returns (cos θ, sin θ·v/θ),
// and the identity when θ < Epsilon.
func Exp(v Vec3) Quaternion {
	if v.Norm() < Epsilon {
		return Identity()
	}

	return FromNumber(quat.Exp(quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}))
}

// LogAt maps q into the tangent space at base: Log(base⁻¹·q'), where q' is
// q flipped onto base's hemisphere.
func LogAt(base, q Quaternion) Vec3 {
	return Log(base.Conj().Mul(AlignSign(q, base)))
}

// ExpAt maps a tangent vector at base back onto the sphere: base·Exp(v).
func ExpAt(base Quaternion, v Vec3) Quaternion {
	return base.Mul(Exp(v))
}

// GeodesicDistance returns the angular distance between the rotations
// represented by q1 and q2: 2·arccos(|⟨q1,q2⟩|), clamped to [0, π].
// Taking the absolute inner product makes it invariant to q ↦ −q.
func GeodesicDistance(q1, q2 Quaternion) float64 {
	return 2 * math.Acos(clamp(math.Abs(q1.Dot(q2)), 0, 1))
}

// AlignSign returns q or −q, whichever lies on the same hemisphere as ref
// (⟨q, ref⟩ ≥ 0). This is the per-pair sign rule used by every averaging
// and tangent-space routine.
func AlignSign(q, ref Quaternion) Quaternion {
	if q.Dot(ref) < 0 {
		return q.Neg()
	}

	return q
}

// FromAxisAngle returns the unit quaternion rotating by angle (radians)
// about axis. A zero axis yields the identity.
func FromAxisAngle(axis Vec3, angle float64) Quaternion {
	n := axis.Norm()
	if n < Epsilon {
		return Identity()
	}

	return Exp(axis.Scale(angle / (2 * n)))
}

// Slerp interpolates along the shortest arc from q to p; t ∈ [0, 1].
func Slerp(q, p Quaternion, t float64) Quaternion {
	p = AlignSign(p, q)

	return ExpAt(q, LogAt(q, p).Scale(t))
}

// clamp limits x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
