// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/matrix"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// constantTol decides when a tangent channel has no variance.
const constantTol = 1e-12

// Dissimilarity returns the dissimilarity between a and b under metric.
//
// Errors:
//   - validation errors of a or b.
//   - qts.ErrGridMismatch (L2: different grids; Pearson: different lengths).
//   - dtw errors for invalid DTW options.
//   - dtw.ErrNoFeasiblePath when the DTW window or pattern cannot reach
//     the end cell.
//   - qts.ErrInvalidConfiguration for an unknown metric.
func Dissimilarity(a, b qts.QTS, metric Metric, opts Options) (float64, error) {
	a, b, err := prepare(a, b, opts.Renormalize)
	if err != nil {
		return 0, err
	}
	switch metric {
	case L2:
		return l2(a, b)
	case Pearson:
		return pearson(a, b)
	case DTW:
		return dtwDistance(a, b, opts)
	default:
		return 0, fmt.Errorf("distance: %v: %w", metric, qts.ErrInvalidConfiguration)
	}
}

func prepare(a, b qts.QTS, renormalize bool) (qts.QTS, qts.QTS, error) {
	if renormalize {
		var err error
		if a, err = qts.Normalize(a); err != nil {
			return a, b, fmt.Errorf("distance: first series: %w", err)
		}
		if b, err = qts.Normalize(b); err != nil {
			return a, b, fmt.Errorf("distance: second series: %w", err)
		}
	}
	if err := a.Validate(); err != nil {
		return a, b, fmt.Errorf("distance: first series: %w", err)
	}
	if err := b.Validate(); err != nil {
		return a, b, fmt.Errorf("distance: second series: %w", err)
	}

	return a, b, nil
}

// l2 is Σᵢ d(aᵢ, bᵢ)² on a shared grid.
func l2(a, b qts.QTS) (float64, error) {
	if err := qts.SameGrid(a, b); err != nil {
		return 0, err
	}
	d := make([]float64, a.Len())
	for i := range d {
		d[i] = quaternion.GeodesicDistance(a.Rot[i], b.Rot[i])
	}

	return floats.Dot(d, d), nil
}

// pearson is 1 − mean channel correlation of the log series, clamped at 0.
func pearson(a, b qts.QTS) (float64, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("distance: pearson needs equal lengths, got %d and %d: %w",
			a.Len(), b.Len(), qts.ErrGridMismatch)
	}
	ta, tb := pairedLogs(a, b)
	xa, xb := make([]float64, a.Len()), make([]float64, b.Len())
	var sum float64
	for ch := 0; ch < 3; ch++ {
		for i := range xa {
			xa[i] = ta.Vec[i].Array()[ch]
			xb[i] = tb.Vec[i].Array()[ch]
		}
		sum += correlation(xa, xb)
	}

	return math.Max(0, 1-sum/3), nil
}

// pairedLogs hemispherizes a, moves every b.Rot[i] onto the sheet of the
// resolved a.Rot[i], and returns both log series.
func pairedLogs(a, b qts.QTS) (qts.Tangent, qts.Tangent) {
	h := qts.Hemispherize(a)
	ta := qts.Tangent{Time: h.Time, Vec: make([]quaternion.Vec3, h.Len())}
	tb := qts.Tangent{Time: b.Time, Vec: make([]quaternion.Vec3, b.Len())}
	for i, r := range h.Rot {
		ta.Vec[i] = quaternion.Log(r)
		tb.Vec[i] = quaternion.Log(quaternion.AlignSign(b.Rot[i], r))
	}

	return ta, tb
}

// correlation is the Pearson correlation of x and y. A channel constant in
// both series counts as 1 when the constants agree and 0 otherwise; a
// channel constant in only one series counts as 0.
func correlation(x, y []float64) float64 {
	cx, cy := isConstant(x), isConstant(y)
	switch {
	case cx && cy:
		if math.Abs(x[0]-y[0]) <= constantTol {
			return 1
		}
		return 0
	case cx || cy:
		return 0
	}

	return stat.Correlation(x, y, nil)
}

func isConstant(x []float64) bool {
	return floats.Max(x)-floats.Min(x) <= constantTol
}

// CostMatrix returns the len(a)×len(b) matrix of geodesic distances.
func CostMatrix(a, b qts.QTS) (*matrix.Dense, error) {
	return matrix.NewDenseFunc(a.Len(), b.Len(), func(i, j int) float64 {
		return quaternion.GeodesicDistance(a.Rot[i], b.Rot[j])
	})
}

func dtwOptions(opts Options) dtw.Options {
	o := dtw.DefaultOptions()
	o.Pattern = opts.Pattern
	if len(o.Pattern.Steps) == 0 {
		o.Pattern = dtw.Symmetric2
	}
	o.Window = opts.Window
	o.Normalize = opts.Normalize

	return o
}

func dtwDistance(a, b qts.QTS, opts Options) (float64, error) {
	cost, err := CostMatrix(a, b)
	if err != nil {
		return 0, err
	}
	o := dtwOptions(opts)
	o.MemoryMode = dtw.TwoRows
	res, err := dtw.Align(cost, &o)
	if err != nil {
		return 0, err
	}
	if math.IsInf(res.Distance, 1) {
		return 0, fmt.Errorf("distance: %d×%d alignment with pattern %q, window %d: %w",
			a.Len(), b.Len(), o.Pattern.Name, o.Window, dtw.ErrNoFeasiblePath)
	}
	if opts.Normalize {
		return res.NormalizedDistance, nil
	}

	return res.Distance, nil
}

// Alignment is the result of DTWAlign. Distance is the raw accumulated
// cost; NormalizedDistance is NaN for a non-normalizable pattern. Path
// pairs indices of the first and second series.
type Alignment struct {
	Distance           float64
	NormalizedDistance float64
	Path               []dtw.Coord
}

// DTWAlign aligns a and b with the given step pattern and no window, and
// returns both distances and the optimal warping path.
//
// Errors:
//   - dtw.ErrNonNormalizableStepPattern when normalize is set and the
//     pattern has no normalization factor.
//   - dtw.ErrNoFeasiblePath when the pattern cannot reach the end cell.
//   - validation errors of a or b.
func DTWAlign(a, b qts.QTS, pattern dtw.StepPattern, normalize bool) (Alignment, error) {
	return DTWAlignWith(a, b, Options{Pattern: pattern, Normalize: normalize})
}

// DTWAlignWith is DTWAlign driven by the full option set, so the
// Sakoe–Chiba window and re-normalization apply as they do for
// Dissimilarity.
func DTWAlignWith(a, b qts.QTS, opts Options) (Alignment, error) {
	a, b, err := prepare(a, b, opts.Renormalize)
	if err != nil {
		return Alignment{}, err
	}
	cost, err := CostMatrix(a, b)
	if err != nil {
		return Alignment{}, err
	}
	o := dtwOptions(opts)
	o.ReturnPath = true
	res, err := dtw.Align(cost, &o)
	if err != nil {
		return Alignment{}, err
	}

	return Alignment{Distance: res.Distance, NormalizedDistance: res.NormalizedDistance, Path: res.Path}, nil
}
