// SPDX-License-Identifier: MIT

package centering

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squat/frechet"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
	"gonum.org/v1/gonum/floats"
)

// Options selects the transformation applied by CenterAndScale.
type Options struct {
	Center    bool
	Scale     bool
	ByRow     bool
	KeepStats bool
	// Frechet configures the mean computations.
	Frechet frechet.Options
}

// DefaultOptions centers by time point without scaling.
func DefaultOptions() Options {
	return Options{Center: true, Frechet: frechet.DefaultOptions()}
}

// Stats are the summary statistics used by a transformation.
//
// By time point, Mean holds μₜ on the shared grid and SD has one entry per
// time index. By row, RowMeans and SD have one entry per member. Means are
// the identity when centering was off; SD is nil when scaling was off.
type Stats struct {
	ByRow    bool
	Mean     qts.QTS
	RowMeans []quaternion.Quaternion
	SD       []float64
}

// Result is the transformed sample, plus Stats when requested.
type Result struct {
	Sample qts.Sample
	Stats  *Stats
}

// CenterAndScale centers and/or scales a sample.
//
// Implementation:
//   - Stage 1: validate the sample (a shared grid is required by time
//     point only).
//   - Stage 2: compute the means (Fréchet, per column or per row) and
//     left-multiply each value by the inverse of its mean.
//   - Stage 3: flip each centered value onto the identity's hemisphere,
//     compute the spread and rescale its log.
//
// Errors:
//   - qts.ErrEmptySample, qts.ErrGridMismatch, member validation errors.
//   - errors from the Fréchet solver, annotated with the index.
//
// The input sample is never modified.
func CenterAndScale(sample qts.Sample, opts Options) (Result, error) {
	if opts.ByRow {
		return byRow(sample, opts)
	}

	return byTime(sample, opts)
}

func byTime(sample qts.Sample, opts Options) (Result, error) {
	m, err := sample.CheckGrid()
	if err != nil {
		return Result{}, err
	}
	out := sample.Clone()
	means := make([]quaternion.Quaternion, m)
	var sds []float64
	if opts.Scale {
		sds = make([]float64, m)
	}
	col := make([]quaternion.Quaternion, len(sample))
	for t := 0; t < m; t++ {
		mu := quaternion.Identity()
		if opts.Center {
			res, err := frechet.Mean(sample.Column(t), opts.Frechet)
			if err != nil {
				return Result{}, fmt.Errorf("centering: time index %d: %w", t, err)
			}
			mu = res.Rotation
		}
		means[t] = mu
		for i := range sample {
			col[i] = center(mu, sample[i].Rot[t])
		}
		if opts.Scale {
			sds[t] = spread(col)
			rescale(col, sds[t])
		}
		for i := range out {
			out[i].Rot[t] = col[i]
		}
	}
	res := Result{Sample: out}
	if opts.KeepStats {
		meanQTS, err := qts.New(sample[0].Time, means)
		if err != nil {
			return Result{}, err
		}
		res.Stats = &Stats{Mean: meanQTS, SD: sds}
	}

	return res, nil
}

func byRow(sample qts.Sample, opts Options) (Result, error) {
	if err := sample.Validate(); err != nil {
		return Result{}, err
	}
	out := sample.Clone()
	means := make([]quaternion.Quaternion, len(sample))
	var sds []float64
	if opts.Scale {
		sds = make([]float64, len(sample))
	}
	for i, q := range sample {
		mu := quaternion.Identity()
		if opts.Center {
			res, err := frechet.Mean(q.Rot, opts.Frechet)
			if err != nil {
				return Result{}, fmt.Errorf("centering: member %d: %w", i, err)
			}
			mu = res.Rotation
		}
		means[i] = mu
		row := out[i].Rot
		for t, r := range q.Rot {
			row[t] = center(mu, r)
		}
		if opts.Scale {
			sds[i] = spread(row)
			rescale(row, sds[i])
		}
	}
	res := Result{Sample: out}
	if opts.KeepStats {
		res.Stats = &Stats{ByRow: true, RowMeans: means, SD: sds}
	}

	return res, nil
}

// center returns μ⁻¹·q on the identity's hemisphere.
func center(mu, q quaternion.Quaternion) quaternion.Quaternion {
	return quaternion.AlignSign(mu.Conj().Mul(q), quaternion.Identity())
}

// spread is sqrt(mean d(q, 1)²) over qs.
func spread(qs []quaternion.Quaternion) float64 {
	d := make([]float64, len(qs))
	for i, q := range qs {
		d[i] = quaternion.GeodesicDistance(q, quaternion.Identity())
	}

	return math.Sqrt(floats.Dot(d, d) / float64(len(d)))
}

// rescale replaces each q with Exp(Log(q)/sd) in place. A spread below
// quaternion.Epsilon counts as zero and leaves qs unchanged.
func rescale(qs []quaternion.Quaternion, sd float64) {
	if sd < quaternion.Epsilon {
		return
	}
	for i, q := range qs {
		qs[i] = quaternion.Exp(quaternion.Log(q).Scale(1 / sd))
	}
}
