// SPDX-License-Identifier: MIT

package alignment

import (
	"fmt"

	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
	"gonum.org/v1/gonum/mat"
)

// TangentArray is the log-map representation of a sample on a shared grid.
// Channels[c] is an N×M matrix whose row n holds channel c (x, y, z) of
// Log(Hemispherize(sample[n])).
type TangentArray struct {
	Grid     []float64
	Channels [3]*mat.Dense
}

// NewTangentArray converts a sample whose members share one time grid.
//
// Errors:
//   - qts.ErrEmptySample, member validation errors.
//   - qts.ErrGridMismatch (with the member index).
func NewTangentArray(sample qts.Sample) (*TangentArray, error) {
	m, err := sample.CheckGrid()
	if err != nil {
		return nil, err
	}
	n := len(sample)
	out := &TangentArray{Grid: append([]float64(nil), sample[0].Time...)}
	for c := range out.Channels {
		out.Channels[c] = mat.NewDense(n, m, nil)
	}
	for i, q := range sample {
		for t, v := range qts.Log(q).Vec {
			out.Channels[0].Set(i, t, v.X)
			out.Channels[1].Set(i, t, v.Y)
			out.Channels[2].Set(i, t, v.Z)
		}
	}

	return out, nil
}

// Dims returns the number of series N and grid points M.
func (a *TangentArray) Dims() (n, m int) {
	return a.Channels[0].Dims()
}

// At returns the tangent vector of series n at time index t.
func (a *TangentArray) At(n, t int) quaternion.Vec3 {
	return quaternion.Vec3{
		X: a.Channels[0].At(n, t),
		Y: a.Channels[1].At(n, t),
		Z: a.Channels[2].At(n, t),
	}
}

// Series returns row n as a tangent representation on the shared grid.
func (a *TangentArray) Series(n int) qts.Tangent {
	_, m := a.Dims()
	out := qts.Tangent{Time: append([]float64(nil), a.Grid...), Vec: make([]quaternion.Vec3, m)}
	for t := range out.Vec {
		out.Vec[t] = a.At(n, t)
	}

	return out
}

// CentersToQTS maps tangent-space centers back to quaternion time series.
//
// Errors:
//   - the validation errors of qts.New, wrapped with the center index.
func CentersToQTS(centers []qts.Tangent) ([]qts.QTS, error) {
	out := make([]qts.QTS, len(centers))
	for k, c := range centers {
		q, err := qts.Exp(c)
		if err != nil {
			return nil, fmt.Errorf("alignment: center %d: %w", k, err)
		}
		out[k] = q
	}

	return out, nil
}
