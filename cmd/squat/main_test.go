// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/squat/distmat"
	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/matrix"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeInputs writes constant series rotated about z by each angle and
// returns their paths.
func writeInputs(t *testing.T, angles ...float64) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i, a := range angles {
		q, err := qts.Constant(qts.UniformGrid(0, 1, 4), quaternion.FromAxisAngle(quaternion.Vec3{Z: 1}, a))
		require.NoError(t, err)
		p := filepath.Join(dir, string(rune('a'+i))+".csv")
		require.NoError(t, writeSeries(p, q))
		paths = append(paths, p)
	}

	return paths
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)

	return out.String(), err
}

func TestRunUsage(t *testing.T) {
	_, err := runArgs(t)
	assert.ErrorContains(t, err, "usage")
	_, err = runArgs(t, "plot")
	assert.ErrorContains(t, err, "unknown cmd")
	_, err = runArgs(t, "mean", "-help")
	assert.ErrorIs(t, err, flag.ErrHelp)
	_, err = runArgs(t, "mean")
	assert.ErrorIs(t, err, qts.ErrEmptySample)
}

func TestRunMean(t *testing.T) {
	paths := writeInputs(t, 0.2, 0.4, 0.6)
	out, err := runArgs(t, "mean", "-max-iter", "50", paths[0], paths[1], paths[2])
	require.NoError(t, err)
	q, err := qts.ReadCSV(bytes.NewBufferString(out))
	require.NoError(t, err)
	require.Equal(t, 4, q.Len())
	want := quaternion.FromAxisAngle(quaternion.Vec3{Z: 1}, 0.4)
	for _, r := range q.Rot {
		assert.InDelta(t, 0, quaternion.GeodesicDistance(r, want), 1e-6)
	}

	out, err = runArgs(t, "median", paths[0], paths[1], paths[2])
	require.NoError(t, err)
	q, err = qts.ReadCSV(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.InDelta(t, 0, quaternion.GeodesicDistance(q.Rot[0], want), 1e-6)

	_, err = runArgs(t, "mean", "-smooth", "3", paths[0], paths[1])
	assert.Error(t, err)
	out, err = runArgs(t, "mean", "-smooth", "3", paths[0])
	require.NoError(t, err)
	q, err = qts.ReadCSV(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, 4, q.Len())
}

func TestRunCenter(t *testing.T) {
	paths := writeInputs(t, 0.1, 0.3)
	outdir := t.TempDir()
	out, err := runArgs(t, "center", "-outdir", outdir, paths[0], paths[1])
	require.NoError(t, err)

	var view statsView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"a", "b"}, view.Labels)
	assert.Len(t, view.Mean, 4)
	require.Len(t, view.Written, 2)

	centered, err := readSeries(filepath.Join(outdir, "a.csv"))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, quaternion.GeodesicDistance(centered.Rot[0], quaternion.Identity()), 1e-6)

	out, err = runArgs(t, "center", "-by-row", "-scale", paths[0], paths[1])
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.True(t, view.ByRow)
	assert.Len(t, view.RowMeans, 2)
}

func TestRunDist(t *testing.T) {
	paths := writeInputs(t, 0, 0.5, 1)
	out, err := runArgs(t, "dist", "-workers", "2", paths[0], paths[1], paths[2])
	require.NoError(t, err)

	var view struct {
		Size   int       `yaml:"size"`
		Method string    `yaml:"method"`
		Labels []string  `yaml:"labels"`
		Values []float64 `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, 3, view.Size)
	assert.Equal(t, "l2", view.Method)
	assert.Equal(t, []string{"a", "b", "c"}, view.Labels)
	require.Len(t, view.Values, 3)
	assert.InDelta(t, 1, view.Values[0], 1e-6)
	assert.InDelta(t, 4, view.Values[1], 1e-6)

	bin := filepath.Join(t.TempDir(), "d.bin")
	_, err = runArgs(t, "dist", "-metric", "dtw", "-out", bin, paths[0], paths[1], paths[2])
	require.NoError(t, err)
	f, err := os.Open(bin)
	require.NoError(t, err)
	defer f.Close()
	d, err := distmat.Load(f)
	require.NoError(t, err)
	assert.Equal(t, "dtw", d.Method())
	assert.Equal(t, 3, d.Size())

	_, err = runArgs(t, "dist", "-metric", "cosine", paths[0])
	assert.ErrorIs(t, err, qts.ErrInvalidConfiguration)
}

func TestRunDistCSV(t *testing.T) {
	paths := writeInputs(t, 0, 0.5, 1)
	out, err := runArgs(t, "dist", "-csv", paths[0], paths[1], paths[2])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a,b,c\n"), out)

	matrixPath := filepath.Join(t.TempDir(), "m.csv")
	require.NoError(t, os.WriteFile(matrixPath, []byte(out), 0o600))
	bin := filepath.Join(t.TempDir(), "m.bin")
	_, err = runArgs(t, "dist", "-from", matrixPath, "-out", bin)
	require.NoError(t, err)
	f, err := os.Open(bin)
	require.NoError(t, err)
	defer f.Close()
	d, err := distmat.Load(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, d.Labels())
	v, err := d.At(2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4, v, 1e-6)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("a,b\n0,1\n2,0\n"), 0o600))
	_, err = runArgs(t, "dist", "-from", bad)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestRunDTW(t *testing.T) {
	paths := writeInputs(t, 0, 0.5)
	out, err := runArgs(t, "dtw", paths[0], paths[1])
	require.NoError(t, err)
	var view alignmentView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.InDelta(t, 3.5, view.Distance, 1e-6)
	assert.InDelta(t, 0.4375, view.NormalizedDistance, 1e-6)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, view.Path)

	_, err = runArgs(t, "dtw", paths[0])
	assert.Error(t, err)
}

func TestRunDTWWindow(t *testing.T) {
	dir := t.TempDir()
	z := quaternion.Vec3{Z: 1}
	short, err := qts.Constant(qts.UniformGrid(0, 1, 4), quaternion.FromAxisAngle(z, 0.1))
	require.NoError(t, err)
	long, err := qts.Constant(qts.UniformGrid(0, 1, 7), quaternion.FromAxisAngle(z, 0.1))
	require.NoError(t, err)
	a, b := filepath.Join(dir, "short.csv"), filepath.Join(dir, "long.csv")
	require.NoError(t, writeSeries(a, short))
	require.NoError(t, writeSeries(b, long))

	out, err := runArgs(t, "dtw", a, b)
	require.NoError(t, err)
	var view alignmentView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, [2]int{3, 6}, view.Path[len(view.Path)-1])

	_, err = runArgs(t, "dtw", "-window", "1", a, b)
	assert.ErrorIs(t, err, dtw.ErrNoFeasiblePath)

	out, err = runArgs(t, "dtw", "-window", "3", a, b)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	for _, c := range view.Path {
		assert.LessOrEqual(t, c[1]-c[0], 3, "%v", c)
	}
}
