// SPDX-License-Identifier: MIT

package centering

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
)

// ErrMissingStats indicates an inverse transform requested on a Result
// produced without KeepStats.
var ErrMissingStats = errors.New("centering: result carries no statistics")

// Uncenter inverts CenterAndScale: each value q becomes μ·Exp(Log(q)·sd),
// with sd = 1 when scaling was off or the recorded spread was zero.
//
// The inverse is exact as long as every scaled tangent vector is shorter
// than π, which holds unless a member lies much farther from the mean than
// the sample's spread.
//
// Errors:
//   - ErrMissingStats when r.Stats is nil.
//   - qts.ErrInvalidConfiguration when the statistics do not match the
//     sample shape.
func Uncenter(r Result) (qts.Sample, error) {
	if r.Stats == nil {
		return nil, ErrMissingStats
	}
	st := r.Stats
	out := r.Sample.Clone()
	if st.ByRow {
		if err := r.Sample.CheckLabels(len(st.RowMeans), "row means"); err != nil {
			return nil, err
		}
		if st.SD != nil {
			if err := r.Sample.CheckLabels(len(st.SD), "row spreads"); err != nil {
				return nil, err
			}
		}
		for i, q := range out {
			for t, v := range q.Rot {
				q.Rot[t] = restore(st.RowMeans[i], v, st.SD, i)
			}
		}

		return out, nil
	}

	for i, q := range out {
		if err := qts.SameGrid(st.Mean, q); err != nil {
			return nil, fmt.Errorf("centering: member %d vs stored mean: %w", i, err)
		}
		if st.SD != nil && len(st.SD) != q.Len() {
			return nil, fmt.Errorf("centering: %d spreads for %d time points: %w",
				len(st.SD), q.Len(), qts.ErrInvalidConfiguration)
		}
		for t, v := range q.Rot {
			q.Rot[t] = restore(st.Mean.Rot[t], v, st.SD, t)
		}
	}

	return out, nil
}

func restore(mu, v quaternion.Quaternion, sd []float64, k int) quaternion.Quaternion {
	if sd != nil && sd[k] >= quaternion.Epsilon {
		v = quaternion.Exp(quaternion.Log(v).Scale(sd[k]))
	}

	return mu.Mul(v)
}
