// SPDX-License-Identifier: MIT

package distmat

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/squat/matrix"
	"github.com/katalvlaran/squat/qts"
	"gonum.org/v1/gonum/mat"
)

// Distance is an immutable symmetric dissimilarity structure over N items.
type Distance struct {
	size   int
	method string
	labels []string
	values []float64
}

// LinearIndex returns the 0-based storage index of the pair {i, j}, i ≠ j,
// in a structure of size n. The pair order does not matter.
func LinearIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}

	return n*i - i*(i+1)/2 + j - i - 1
}

// PairAt is the inverse of LinearIndex: it returns the pair (i, j), i < j,
// stored at index k.
func PairAt(n, k int) (i, j int) {
	for row := n - 1; k >= row; row-- {
		k -= row
		i++
	}

	return i, i + 1 + k
}

// DefaultLabels returns "1".."n".
func DefaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}

	return out
}

// New builds a Distance from its lower-triangular values. A nil labels
// slice selects DefaultLabels. Inputs are copied.
//
// Errors:
//   - qts.ErrInvalidConfiguration when size < 1, len(values) ≠ C(size,2)
//     or len(labels) ≠ size.
//   - matrix.ErrNaNInf / matrix.ErrNegativeEntry (with the pair) for
//     invalid entries. +Inf is accepted.
func New(size int, values []float64, labels []string, method string) (*Distance, error) {
	if size < 1 {
		return nil, fmt.Errorf("distmat: size %d: %w", size, qts.ErrInvalidConfiguration)
	}
	if want := size * (size - 1) / 2; len(values) != want {
		return nil, fmt.Errorf("distmat: %d values for size %d (want %d): %w",
			len(values), size, want, qts.ErrInvalidConfiguration)
	}
	if labels == nil {
		labels = DefaultLabels(size)
	}
	if len(labels) != size {
		return nil, fmt.Errorf("distmat: %d labels for size %d: %w", len(labels), size, qts.ErrInvalidConfiguration)
	}
	for k, v := range values {
		i, j := PairAt(size, k)
		switch {
		case math.IsNaN(v):
			return nil, fmt.Errorf("distmat: pair (%d,%d): %w", i, j, matrix.ErrNaNInf)
		case v < 0:
			return nil, fmt.Errorf("distmat: pair (%d,%d) = %g: %w", i, j, v, matrix.ErrNegativeEntry)
		}
	}

	return &Distance{
		size:   size,
		method: method,
		labels: append([]string(nil), labels...),
		values: append([]float64(nil), values...),
	}, nil
}

// Size returns N.
func (d *Distance) Size() int { return d.size }

// Method returns the name of the metric that produced the values.
func (d *Distance) Method() string { return d.method }

// Labels returns a copy of the item labels.
func (d *Distance) Labels() []string { return append([]string(nil), d.labels...) }

// Values returns a copy of the C(N,2) lower-triangular values.
func (d *Distance) Values() []float64 { return append([]float64(nil), d.values...) }

// At returns the dissimilarity between items i and j (0 on the diagonal).
//
// Errors:
//   - matrix.ErrOutOfRange when i or j is outside [0, N).
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.size || j < 0 || j >= d.size {
		return 0, fmt.Errorf("distmat: At(%d,%d) on size %d: %w", i, j, d.size, matrix.ErrOutOfRange)
	}
	if i == j {
		return 0, nil
	}

	return d.values[LinearIndex(d.size, i, j)], nil
}

// ToDense expands the structure into a full N×N matrix.
func (d *Distance) ToDense() (*matrix.Dense, error) {
	return matrix.NewDenseFunc(d.size, d.size, func(i, j int) float64 {
		if i == j {
			return 0
		}
		return d.values[LinearIndex(d.size, i, j)]
	})
}

// ToSymDense expands the structure into a gonum symmetric matrix.
func (d *Distance) ToSymDense() *mat.SymDense {
	s := mat.NewSymDense(d.size, nil)
	for k, v := range d.values {
		i, j := PairAt(d.size, k)
		s.SetSym(i, j, v)
	}

	return s
}

// yamlDistance is the serialized shape used by MarshalYAML.
type yamlDistance struct {
	Size   int         `yaml:"size"`
	Method string      `yaml:"method,omitempty"`
	Labels []string    `yaml:"labels"`
	Values []float64   `yaml:"values"`
	Matrix [][]float64 `yaml:"matrix,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. Small structures (N ≤ 20) also
// carry the expanded square matrix for readability.
func (d *Distance) MarshalYAML() (interface{}, error) {
	out := yamlDistance{Size: d.size, Method: d.method, Labels: d.labels, Values: d.values}
	if d.size <= 20 {
		out.Matrix = make([][]float64, d.size)
		for i := range out.Matrix {
			out.Matrix[i] = make([]float64, d.size)
			for j := range out.Matrix[i] {
				out.Matrix[i][j], _ = d.At(i, j)
			}
		}
	}

	return out, nil
}
