// SPDX-License-Identifier: MIT

package qts

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/squat/quaternion"
)

// Tangent is the log-map representation of a QTS: Vec[i] = Log(Rot[i]).
type Tangent struct {
	Time []float64
	Vec  []quaternion.Vec3
}

// Normalize returns a copy of q with every rotation rescaled to unit norm.
func Normalize(q QTS) (QTS, error) {
	out := q.Clone()
	for i, r := range q.Rot {
		u, err := quaternion.Normalize(r)
		if err != nil {
			return QTS{}, fmt.Errorf("qts: rotation %d: %w", i, err)
		}
		out.Rot[i] = u
	}

	return out, nil
}

// Hemispherize enforces sign continuity along the series. Rot[0] is moved
// to the w ≥ 0 sheet, then Rot[i] is flipped whenever ⟨Rot[i], Rot[i-1]⟩ < 0
// after Rot[i-1] has itself been resolved. The represented rotations are
// unchanged; only the sheet of the double cover is chosen, so q and its
// pointwise negation hemispherize to the same series.
func Hemispherize(q QTS) QTS {
	out := q.Clone()
	if len(out.Rot) == 0 {
		return out
	}
	out.Rot[0] = quaternion.AlignSign(out.Rot[0], quaternion.Identity())
	for i := 1; i < len(out.Rot); i++ {
		out.Rot[i] = quaternion.AlignSign(out.Rot[i], out.Rot[i-1])
	}

	return out
}

// Log returns the tangent representation of a hemispherized copy of q.
func Log(q QTS) Tangent {
	h := Hemispherize(q)
	out := Tangent{Time: h.Time, Vec: make([]quaternion.Vec3, len(h.Rot))}
	for i, r := range h.Rot {
		out.Vec[i] = quaternion.Log(r)
	}

	return out
}

// Exp maps a tangent representation back to a QTS.
func Exp(t Tangent) (QTS, error) {
	rot := make([]quaternion.Quaternion, len(t.Vec))
	for i, v := range t.Vec {
		rot[i] = quaternion.Exp(v)
	}

	return New(t.Time, rot)
}

// Reorient expresses q relative to its first rotation: Rot[i] ↦ Rot[0]⁻¹·Rot[i].
func Reorient(q QTS) (QTS, error) {
	if q.Len() == 0 {
		return QTS{}, ErrEmptySeries
	}
	out := q.Clone()
	inv := q.Rot[0].Conj()
	for i, r := range q.Rot {
		out.Rot[i] = inv.Mul(r)
	}

	return out, nil
}

// Resample slerps q onto size equally spaced points spanning
// [Time[0], Time[len-1]].
//
// Errors:
//   - ErrInvalidConfiguration when size < 2 or q has fewer than 2 points.
func Resample(q QTS, size int) (QTS, error) {
	if size < 2 || q.Len() < 2 {
		return QTS{}, fmt.Errorf("qts: resample %d points to %d: %w", q.Len(), size, ErrInvalidConfiguration)
	}
	if err := q.validateShape(); err != nil {
		return QTS{}, err
	}
	grid := UniformGrid(q.Time[0], q.Time[q.Len()-1], size)
	rot := make([]quaternion.Quaternion, size)
	for k, t := range grid {
		// j is the first index with Time[j] >= t.
		j := sort.SearchFloat64s(q.Time, t)
		switch {
		case j == 0:
			rot[k] = q.Rot[0]
		case j >= q.Len():
			rot[k] = q.Rot[q.Len()-1]
		default:
			t0, t1 := q.Time[j-1], q.Time[j]
			rot[k] = quaternion.Slerp(q.Rot[j-1], q.Rot[j], (t-t0)/(t1-t0))
		}
	}

	return New(grid, rot)
}

// Derivative returns the relative rotations Rot[i]⁻¹·Rot[i+1], observed at
// the midpoints of consecutive time values.
func Derivative(q QTS) (QTS, error) {
	if q.Len() < 2 {
		return QTS{}, fmt.Errorf("qts: derivative of %d points: %w", q.Len(), ErrInvalidConfiguration)
	}
	h := Hemispherize(q)
	time := make([]float64, h.Len()-1)
	rot := make([]quaternion.Quaternion, h.Len()-1)
	for i := range rot {
		time[i] = (h.Time[i] + h.Time[i+1]) / 2
		rot[i] = h.Rot[i].Conj().Mul(h.Rot[i+1])
	}

	return New(time, rot)
}
