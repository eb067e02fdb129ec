// SPDX-License-Identifier: MIT

package qts

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squat/quaternion"
)

// GridTolerance is the relative tolerance used when comparing time grids.
const GridTolerance = 1e-9

// QTS is a quaternion time series: Rot[i] is observed at Time[i].
type QTS struct {
	Time []float64
	Rot  []quaternion.Quaternion
}

// New builds a validated QTS. Rotations are re-normalized; inputs are copied.
//
// Errors:
//   - ErrEmptySeries, ErrLengthMismatch, ErrUnsortedTime.
//   - quaternion.ErrDegenerateQuaternion (wrapped with the index).
func New(time []float64, rot []quaternion.Quaternion) (QTS, error) {
	q := QTS{Time: append([]float64(nil), time...), Rot: make([]quaternion.Quaternion, len(rot))}
	if err := q.validateShape(); err != nil {
		return QTS{}, err
	}
	for i, r := range rot {
		u, err := quaternion.Normalize(r)
		if err != nil {
			return QTS{}, fmt.Errorf("qts: rotation %d: %w", i, err)
		}
		q.Rot[i] = u
	}

	return q, nil
}

// Constant returns a QTS on the given grid holding r at every point.
func Constant(time []float64, r quaternion.Quaternion) (QTS, error) {
	rot := make([]quaternion.Quaternion, len(time))
	for i := range rot {
		rot[i] = r
	}

	return New(time, rot)
}

// UniformGrid returns n equally spaced time values on [start, end].
func UniformGrid(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end

	return out
}

// Len returns the number of points.
func (q QTS) Len() int {
	return len(q.Rot)
}

// Clone returns an independent copy.
func (q QTS) Clone() QTS {
	return QTS{
		Time: append([]float64(nil), q.Time...),
		Rot:  append([]quaternion.Quaternion(nil), q.Rot...),
	}
}

// Validate checks shape, time ordering and that every rotation is unit
// within 1e-6.
func (q QTS) Validate() error {
	if err := q.validateShape(); err != nil {
		return err
	}
	for i, r := range q.Rot {
		if !r.IsFinite() || !r.IsUnit(1e-6) {
			return fmt.Errorf("qts: rotation %d is not unit: %w", i, quaternion.ErrDegenerateQuaternion)
		}
	}

	return nil
}

func (q QTS) validateShape() error {
	if len(q.Time) == 0 {
		return ErrEmptySeries
	}
	if len(q.Time) != len(q.Rot) {
		return fmt.Errorf("qts: %d times vs %d rotations: %w", len(q.Time), len(q.Rot), ErrLengthMismatch)
	}
	for i := 1; i < len(q.Time); i++ {
		if !(q.Time[i] > q.Time[i-1]) {
			return fmt.Errorf("qts: time[%d]=%g after time[%d]=%g: %w", i, q.Time[i], i-1, q.Time[i-1], ErrUnsortedTime)
		}
	}

	return nil
}

// SameGrid reports ErrGridMismatch unless a and b have the same length and
// time values (within GridTolerance, relative).
func SameGrid(a, b QTS) error {
	if len(a.Time) != len(b.Time) {
		return fmt.Errorf("qts: grid lengths %d and %d: %w", len(a.Time), len(b.Time), ErrGridMismatch)
	}
	for i := range a.Time {
		scale := math.Max(1, math.Max(math.Abs(a.Time[i]), math.Abs(b.Time[i])))
		if math.Abs(a.Time[i]-b.Time[i]) > GridTolerance*scale {
			return fmt.Errorf("qts: time index %d (%g vs %g): %w", i, a.Time[i], b.Time[i], ErrGridMismatch)
		}
	}

	return nil
}
