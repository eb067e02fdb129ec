// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Epsilon is the tolerance below which a norm is treated as zero.
// It guards normalization and the removable singularities of Log and Exp.
const Epsilon = 1e-12

// Quaternion is a 4-tuple (W, X, Y, Z); W is the scalar part.
// Values are plain data: every method returns a new value.
type Quaternion struct {
	W, X, Y, Z float64
}

// Vec3 is a tangent vector (rotation vector) at some base point.
type Vec3 struct {
	X, Y, Z float64
}

// Identity returns the identity rotation (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// New builds a quaternion from (w, x, y, z) without normalizing it.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Number converts q to gonum's quaternion representation.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// FromNumber converts a gonum quaternion back to a Quaternion.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Array returns the coordinates in (w, x, y, z) order.
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// Norm returns the Euclidean norm of q in R⁴.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// IsUnit reports whether |‖q‖ − 1| ≤ tol.
func (q Quaternion) IsUnit(tol float64) bool {
	return math.Abs(q.Norm()-1) <= tol
}

// IsFinite reports whether every coordinate is finite.
func (q Quaternion) IsFinite() bool {
	for _, v := range q.Array() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Neg returns −q (the same rotation on the opposite sheet).
func (q Quaternion) Neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Conj returns the conjugate (w, −x, −y, −z).
func (q Quaternion) Conj() Quaternion {
	return FromNumber(quat.Conj(q.Number()))
}

// Dot returns the R⁴ inner product ⟨q, p⟩.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z
}

// Mul returns the Hamilton product q·p (apply p, then q).
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return FromNumber(quat.Mul(q.Number(), p.Number()))
}

// Inverse returns q⁻¹. For unit quaternions this equals Conj.
// A zero quaternion yields non-finite coordinates; use Normalize first.
func (q Quaternion) Inverse() Quaternion {
	return FromNumber(quat.Inv(q.Number()))
}

// Vector returns the vector part (x, y, z).
func (q Quaternion) Vector() Vec3 {
	return Vec3{X: q.X, Y: q.Y, Z: q.Z}
}

// String implements fmt.Stringer.
func (q Quaternion) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g, %.6g)", q.W, q.X, q.Y, q.Z)
}

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns v − u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Dot returns ⟨v, u⟩.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Norm returns ‖v‖.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Array returns the coordinates in (x, y, z) order.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
