// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/matrix"
	"github.com/katalvlaran/squat/quaternion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// turnCost returns the geodesic cost matrix between two sequences of
// rotations about z given by their angles. For angle gaps up to π the
// entries equal |a[i] − b[j]|.
func turnCost(tb testing.TB, a, b []float64) *matrix.Dense {
	tb.Helper()
	z := quaternion.Vec3{Z: 1}
	qa := make([]quaternion.Quaternion, len(a))
	for i, v := range a {
		qa[i] = quaternion.FromAxisAngle(z, v)
	}
	qb := make([]quaternion.Quaternion, len(b))
	for j, v := range b {
		qb[j] = quaternion.FromAxisAngle(z, v)
	}
	cost, err := matrix.NewDenseFunc(len(a), len(b), func(i, j int) float64 {
		return quaternion.GeodesicDistance(qa[i], qb[j])
	})
	require.NoError(tb, err)

	return cost
}

// distance runs Align and returns the normalized or raw distance.
func distance(t *testing.T, a, b []float64, opts dtw.Options) float64 {
	t.Helper()
	res, err := dtw.Align(turnCost(t, a, b), &opts)
	require.NoError(t, err)
	if opts.Normalize {
		return res.NormalizedDistance
	}

	return res.Distance
}

// TestAlign_EmptyInput verifies that Align returns ErrEmptyInput for a
// missing cost matrix.
func TestAlign_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, err := dtw.Align(nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "nil cost matrix should error")
}

// TestAlign_BadWindowOption ensures that Window < -1 triggers ErrBadInput.
func TestAlign_BadWindowOption(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2

	_, err := dtw.Align(turnCost(t, []float64{1}, []float64{1}), &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error ErrBadInput")
}

// TestAlign_BadPenalty rejects negative and non-finite slope penalties.
func TestAlign_BadPenalty(t *testing.T) {
	for _, p := range []float64{-1, math.NaN(), math.Inf(1)} {
		opts := dtw.DefaultOptions()
		opts.SlopePenalty = p
		_, err := dtw.Align(turnCost(t, []float64{1}, []float64{1}), &opts)
		assert.ErrorIs(t, err, dtw.ErrBadInput, "penalty %v", p)
	}
}

// TestAlign_PathNeedsMatrix ensures ReturnPath with TwoRows errors.
func TestAlign_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, err := dtw.Align(turnCost(t, []float64{1, 2}, []float64{1, 2}), &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error ErrPathNeedsMatrix")
}

// TestAlign_IdenticalSequences: zero distance and no path by default.
func TestAlign_IdenticalSequences(t *testing.T) {
	cost := turnCost(t, []float64{0, 1, 2}, []float64{0, 1, 2})
	opts := dtw.DefaultOptions()

	res, err := dtw.Align(cost, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Distance, 1e-6, "identical sequences must have zero distance")
	assert.Nil(t, res.Path, "default ReturnPath=false should yield nil path")

	res, err = dtw.Align(cost, nil)
	require.NoError(t, err, "nil options fall back to defaults")
	assert.InDelta(t, 0, res.Distance, 1e-6)
	assert.True(t, math.IsNaN(res.NormalizedDistance), "Symmetric1 has no factor")
}

// TestAlign_RepeatedSample absorbs a repeated rotation with one
// horizontal move.
func TestAlign_RepeatedSample(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	res, err := dtw.Align(turnCost(t, []float64{1, 2, 3}, []float64{1, 2, 2, 3}), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Distance, 1e-6)
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}, res.Path)
}

// TestAlign_Window covers the band: positive widths constrain, zero and
// −1 do not.
func TestAlign_Window(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 3, 3}

	opts := dtw.DefaultOptions()
	opts.Window = 1
	res, err := dtw.Align(turnCost(t, a, b), &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Distance, 1), "end cell outside the band")

	opts.ReturnPath = true
	_, err = dtw.Align(turnCost(t, a, b), &opts)
	assert.ErrorIs(t, err, dtw.ErrNoFeasiblePath, "no path through the band")

	for _, w := range []int{0, -1, 2} {
		opts := dtw.DefaultOptions()
		opts.Window = w
		assert.InDelta(t, 0, distance(t, a, b, opts), 1e-6, "window %d", w)
	}
}

// TestAlign_SlopePenaltyAffectsDistance ensures that a positive slope
// penalty is added once per non-diagonal move.
func TestAlign_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	opts := dtw.DefaultOptions()
	assert.InDelta(t, 0, distance(t, a, b, opts), 1e-6, "zero penalty allows perfect cost")

	opts.SlopePenalty = 1.0
	assert.InDelta(t, 1, distance(t, a, b, opts), 1e-6, "one horizontal move")
}

// TestAlign_TwoRowsDistanceOnly confirms TwoRows matches FullMatrix for
// every predefined pattern and does not return a path.
func TestAlign_TwoRowsDistanceOnly(t *testing.T) {
	cost := turnCost(t, []float64{0, 1, 2, 3, 2}, []float64{0, 1, 1, 2, 3, 3})

	for _, p := range []dtw.StepPattern{dtw.Symmetric1, dtw.Symmetric2, dtw.Asymmetric} {
		ref := dtw.DefaultOptions()
		ref.Pattern = p
		want, err := dtw.Align(cost, &ref)
		require.NoError(t, err)

		opts := ref
		opts.MemoryMode = dtw.TwoRows
		got, err := dtw.Align(cost, &opts)
		require.NoError(t, err)
		assert.Equal(t, want.Distance, got.Distance, "TwoRows must match FullMatrix distance (%s)", p.Name)
		assert.Nil(t, got.Path, "TwoRows should not return a path")
	}
}

// TestAlign_Normalization covers normalizable and non-normalizable patterns.
func TestAlign_Normalization(t *testing.T) {
	cost := turnCost(t, []float64{0, 1, 2}, []float64{0, 1, 3, 3})

	opts := dtw.DefaultOptions()
	opts.Normalize = true
	_, err := dtw.Align(cost, &opts)
	assert.ErrorIs(t, err, dtw.ErrNonNormalizableStepPattern, "Symmetric1 has no factor")

	for _, tc := range []struct {
		pattern dtw.StepPattern
		factor  float64
	}{
		{dtw.Symmetric2, 7},
		{dtw.Asymmetric, 3},
	} {
		opts := dtw.DefaultOptions()
		opts.Pattern = tc.pattern
		opts.Normalize = true
		res, err := dtw.Align(cost, &opts)
		require.NoError(t, err)
		assert.InDelta(t, res.Distance/tc.factor, res.NormalizedDistance, 1e-12, tc.pattern.Name)
	}
}

// TestAlign_Symmetric2Weights checks the doubled diagonal on hand-computed
// cases.
func TestAlign_Symmetric2Weights(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Pattern = dtw.Symmetric2

	// cost = [[0,1],[1,0]]: diagonal path 0 + 2·0 = 0.
	diag, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	res, err := dtw.Align(diag, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)

	// cost = [[1,1],[1,1]]: diagonal 1 + 2·1 = 3 equals 1 + 1 + 1 via a corner.
	flat, err := matrix.FromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	res, err = dtw.Align(flat, &opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Distance)
}

// TestAlign_SymmetryUnderSwap holds for the symmetric patterns.
func TestAlign_SymmetryUnderSwap(t *testing.T) {
	a := []float64{0.3, 1.2, 2.2, 1.9, 0.4}
	b := []float64{0.1, 0.9, 2.5, 2.4, 1.1, 0.0}
	for _, p := range []dtw.StepPattern{dtw.Symmetric1, dtw.Symmetric2} {
		opts := dtw.DefaultOptions()
		opts.Pattern = p
		assert.InDelta(t, distance(t, a, b, opts), distance(t, b, a, opts), 1e-12, p.Name)
	}
}

// TestAlign_AsymmetricInfeasible: the second sequence cannot be more than
// twice as long (minus one) as the first.
func TestAlign_AsymmetricInfeasible(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Pattern = dtw.Asymmetric

	d := distance(t, []float64{0, 1}, []float64{0, 1, 2}, opts)
	assert.False(t, math.IsInf(d, 1), "M = 2N-1 is reachable")

	d = distance(t, []float64{0, 1}, []float64{0, 1, 2, 3}, opts)
	assert.True(t, math.IsInf(d, 1), "M > 2N-1 is unreachable")
}

// TestAlign_PathIsMonotone checks path endpoints and step admissibility.
func TestAlign_PathIsMonotone(t *testing.T) {
	cost, err := matrix.NewDenseFunc(6, 4, func(i, j int) float64 {
		return math.Abs(math.Sin(float64(i)) - math.Cos(float64(j)))
	})
	require.NoError(t, err)
	opts := dtw.DefaultOptions()
	opts.Pattern = dtw.Symmetric2
	opts.Normalize = true
	opts.ReturnPath = true

	res, err := dtw.Align(cost, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, res.Path[0])
	assert.Equal(t, dtw.Coord{I: 5, J: 3}, res.Path[len(res.Path)-1])
	for k := 1; k < len(res.Path); k++ {
		di := res.Path[k].I - res.Path[k-1].I
		dj := res.Path[k].J - res.Path[k-1].J
		assert.True(t, di >= 0 && dj >= 0 && di+dj > 0 && di <= 1 && dj <= 1, "step %d", k)
	}
	assert.InDelta(t, res.Distance/10, res.NormalizedDistance, 1e-12)

	// Accumulated cost along the path reproduces the distance.
	var sum float64
	for k, c := range res.Path {
		v, _ := cost.At(c.I, c.J)
		switch {
		case k == 0:
			sum += v
		case res.Path[k].I-res.Path[k-1].I == 1 && res.Path[k].J-res.Path[k-1].J == 1:
			sum += 2 * v
		default:
			sum += v
		}
	}
	assert.InDelta(t, res.Distance, sum, 1e-12)
}

// TestAlign_NaNCost rejects NaN entries with coordinates.
func TestAlign_NaNCost(t *testing.T) {
	cost, err := matrix.FromRows([][]float64{{0, 1}, {math.NaN(), 0}})
	require.NoError(t, err)
	_, err = dtw.Align(cost, nil)
	assert.ErrorIs(t, err, dtw.ErrBadInput)
	assert.Contains(t, err.Error(), "cost(1,0)")
}

// TestStepPattern_ParseAndValidate covers the pattern registry and validation.
func TestStepPattern_ParseAndValidate(t *testing.T) {
	for name, want := range map[string]dtw.StepPattern{
		"symmetric1": dtw.Symmetric1,
		"Symmetric2": dtw.Symmetric2,
		"":           dtw.Symmetric2,
		"ASYMMETRIC": dtw.Asymmetric,
	} {
		got, err := dtw.ParseStepPattern(name)
		require.NoError(t, err, name)
		assert.Equal(t, want.Name, got.Name)
	}
	_, err := dtw.ParseStepPattern("rabinerJuang")
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	assert.False(t, dtw.Symmetric1.Normalizable())
	assert.True(t, math.IsNaN(dtw.Symmetric1.Factor(3, 4)))
	assert.Equal(t, 7.0, dtw.Symmetric2.Factor(3, 4))
	assert.Equal(t, 3.0, dtw.Asymmetric.Factor(3, 4))

	bad := []dtw.StepPattern{
		{Name: "empty"},
		{Name: "still", Steps: []dtw.Step{{0, 0, 1}}},
		{Name: "backwards", Steps: []dtw.Step{{-1, 1, 1}}},
		{Name: "weightless", Steps: []dtw.Step{{1, 1, 0}}},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), dtw.ErrBadInput, p.Name)
	}
}

// TestAlign_CustomPattern exercises a pattern reaching two rows back in
// both memory modes.
func TestAlign_CustomPattern(t *testing.T) {
	p := dtw.StepPattern{
		Name:  "skip",
		Steps: []dtw.Step{{1, 1, 1}, {2, 1, 1}, {0, 1, 1}},
		Norm:  dtw.NormM,
	}
	cost, err := matrix.NewDenseFunc(7, 5, func(i, j int) float64 { return math.Abs(float64(i) - 1.5*float64(j)) })
	require.NoError(t, err)

	full := dtw.DefaultOptions()
	full.Pattern = p
	full.Normalize = true
	ref, err := dtw.Align(cost, &full)
	require.NoError(t, err)

	rolling := full
	rolling.MemoryMode = dtw.TwoRows
	got, err := dtw.Align(cost, &rolling)
	require.NoError(t, err)
	assert.Equal(t, ref.Distance, got.Distance)
	assert.InDelta(t, ref.Distance/5, got.NormalizedDistance, 1e-12)
}
