// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// TestNewDense_InvalidDimensions covers non-positive shapes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

// TestDense_AtSet checks round trips and out-of-range errors with coordinates.
func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.At(2,0)")

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestDense_CloneIndependent verifies deep copy semantics.
func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

// TestNewDenseFunc_FromRows builds the same matrix two ways.
func TestNewDenseFunc_FromRows(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFunc(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{0, 1, 2}, {10, 11, 12}})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.Equal(t, a.RawRowView(i), b.RawRowView(i), "row %d", i)
	}
	assert.Equal(t, []float64{10, 11, 12}, b.RawRowView(1))

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_RawRowView writes through to storage.
func TestDense_RawRowView(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	row := m.RawRowView(1)
	row[0] = 7
	v, _ := m.At(1, 0)
	assert.Equal(t, 7.0, v)
}
