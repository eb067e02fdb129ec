// SPDX-License-Identifier: MIT

package frechet

import (
	"fmt"

	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
)

// SeriesResult is a pointwise statistic of a sample together with the
// per-time-point diagnostics of the underlying solves.
type SeriesResult struct {
	Series     qts.QTS
	Iterations []int
	Converged  []bool
}

// Err returns nil when every time point converged, otherwise an error
// wrapping ErrNotConverged naming the first offending index and the count.
func (r SeriesResult) Err() error {
	first, failed := -1, 0
	for t, ok := range r.Converged {
		if !ok {
			if first < 0 {
				first = t
			}
			failed++
		}
	}
	if failed == 0 {
		return nil
	}

	return fmt.Errorf("frechet: %d of %d time points, first at index %d: %w",
		failed, len(r.Converged), first, ErrNotConverged)
}

// MeanSeries returns the pointwise Fréchet mean of a sample sharing one
// time grid.
//
// Errors:
//   - qts.ErrEmptySample, qts.ErrGridMismatch (with the member index).
//   - any Solve error, annotated with the time index.
func MeanSeries(sample qts.Sample, opts Options) (SeriesResult, error) {
	return pointwise(sample, Uniform, opts)
}

// MedianSeries returns the pointwise Fréchet median of a sample sharing one
// time grid. Errors are those of MeanSeries.
func MedianSeries(sample qts.Sample, opts Options) (SeriesResult, error) {
	return pointwise(sample, Weiszfeld, opts)
}

func pointwise(sample qts.Sample, weight WeightFunc, opts Options) (SeriesResult, error) {
	m, err := sample.CheckGrid()
	if err != nil {
		return SeriesResult{}, err
	}
	rot := make([]quaternion.Quaternion, m)
	out := SeriesResult{Iterations: make([]int, m), Converged: make([]bool, m)}
	base := opts.Logger
	for t := 0; t < m; t++ {
		if base != nil {
			opts.Logger = base.With("time_index", t)
		}
		res, err := Solve(sample.Column(t), weight, opts)
		if err != nil {
			return SeriesResult{}, fmt.Errorf("frechet: time index %d: %w", t, err)
		}
		rot[t] = res.Rotation
		out.Iterations[t] = res.Iterations
		out.Converged[t] = res.Converged
	}
	out.Series, err = qts.New(sample[0].Time, rot)
	if err != nil {
		return SeriesResult{}, err
	}

	return out, nil
}

// MovingAverage smooths q by replacing each point with the Fréchet mean of
// the points in a centered window of the given odd width. The window is
// truncated at both ends of the series; width 1 returns a copy of q.
//
// Errors:
//   - qts.ErrInvalidConfiguration when width is even or < 1.
//   - the validation error of q, or any Solve error with the time index.
func MovingAverage(q qts.QTS, width int, opts Options) (SeriesResult, error) {
	if width < 1 || width%2 == 0 {
		return SeriesResult{}, fmt.Errorf("frechet: window width %d must be odd and positive: %w",
			width, qts.ErrInvalidConfiguration)
	}
	if err := q.Validate(); err != nil {
		return SeriesResult{}, err
	}
	half := width / 2
	n := q.Len()
	rot := make([]quaternion.Quaternion, n)
	out := SeriesResult{Iterations: make([]int, n), Converged: make([]bool, n)}
	for t := 0; t < n; t++ {
		lo, hi := max(0, t-half), min(n, t+half+1)
		// Start from the window's center so the sign choice follows q[t].
		win := append([]quaternion.Quaternion{q.Rot[t]}, q.Rot[lo:t]...)
		win = append(win, q.Rot[t+1:hi]...)
		res, err := Mean(win, opts)
		if err != nil {
			return SeriesResult{}, fmt.Errorf("frechet: time index %d: %w", t, err)
		}
		rot[t] = res.Rotation
		out.Iterations[t] = res.Iterations
		out.Converged[t] = res.Converged
	}
	var err error
	out.Series, err = qts.New(q.Time, rot)
	if err != nil {
		return SeriesResult{}, err
	}

	return out, nil
}
