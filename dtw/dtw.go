// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squat/matrix"
)

// Align runs the DTW dynamic program over an N×M local-cost matrix.
//
// Implementation:
//   - Stage 1: validate options (nil means DefaultOptions) and the cost
//     matrix (non-empty, no NaN).
//   - Stage 2: fill D row by row; each cell takes the cheapest admissible
//     step, cells outside the window stay +Inf. FullMatrix also records the
//     chosen step per cell.
//   - Stage 3: normalize by the pattern's factor when requested.
//   - Stage 4: if ReturnPath, follow the recorded steps back from
//     (N−1, M−1) to (0, 0).
//
// Complexity:
//
//	Time   = O(N·M·S) for S pattern steps
//	Memory = O(N·M) (FullMatrix) or O(M·(maxΔi+1)) (TwoRows)
//
// Errors:
//   - ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix,
//     ErrNonNormalizableStepPattern, ErrNoFeasiblePath.
func Align(cost matrix.Matrix, opts *Options) (Result, error) {
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}
	pattern, err := opts.validate()
	if err != nil {
		return Result{}, err
	}
	if cost == nil || cost.Rows() == 0 || cost.Cols() == 0 {
		return Result{}, ErrEmptyInput
	}
	n, m := cost.Rows(), cost.Cols()
	cell, err := costReader(cost)
	if err != nil {
		return Result{}, err
	}

	// Rolling storage keeps maxΔi+1 rows; row i lives in slot i % rows.
	rows := n
	if opts.MemoryMode == TwoRows {
		rows = min(n, max(2, pattern.maxDI()+1))
	}
	acc := make([]float64, rows*m)
	var pred []int8
	if opts.MemoryMode == FullMatrix {
		pred = make([]int8, n*m)
	}
	at := func(i, j int) float64 { return acc[(i%rows)*m+j] }
	inf := math.Inf(1)

	for i := 0; i < n; i++ {
		base := (i % rows) * m
		for j := 0; j < m; j++ {
			acc[base+j] = inf
			if pred != nil {
				pred[i*m+j] = -1
			}
			if opts.Window > 0 && abs(i-j) > opts.Window {
				continue
			}
			c := cell(i, j)
			if i == 0 && j == 0 {
				acc[base] = c
				continue
			}
			best, bestStep := inf, -1
			for k, s := range pattern.Steps {
				pi, pj := i-s.DI, j-s.DJ
				if pi < 0 || pj < 0 {
					continue
				}
				prev := at(pi, pj)
				if math.IsInf(prev, 1) {
					continue
				}
				v := prev + s.Weight*c
				if s.DI != s.DJ {
					v += opts.SlopePenalty
				}
				if v < best {
					best, bestStep = v, k
				}
			}
			acc[base+j] = best
			if pred != nil {
				pred[i*m+j] = int8(bestStep)
			}
		}
	}

	res := Result{Distance: at(n-1, m-1), NormalizedDistance: math.NaN()}
	if pattern.Normalizable() {
		res.NormalizedDistance = res.Distance / pattern.Factor(n, m)
	}
	if !opts.ReturnPath {
		return res, nil
	}
	if math.IsInf(res.Distance, 1) {
		return Result{}, fmt.Errorf("dtw: end cell (%d,%d) unreachable: %w", n-1, m-1, ErrNoFeasiblePath)
	}
	res.Path = backtrack(pred, pattern, n, m)

	return res, nil
}

// backtrack follows the recorded steps from the end cell to (0,0) and
// returns the path in forward order.
func backtrack(pred []int8, pattern StepPattern, n, m int) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n-1, m-1
	for {
		path = append(path, Coord{I: i, J: j})
		if i == 0 && j == 0 {
			break
		}
		s := pattern.Steps[pred[i*m+j]]
		i, j = i-s.DI, j-s.DJ
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// costReader returns a fast accessor for cost, reading rows of *Dense
// directly, after rejecting NaN entries.
func costReader(cost matrix.Matrix) (func(i, j int) float64, error) {
	n, m := cost.Rows(), cost.Cols()
	flat := make([]float64, n*m)
	if d, ok := cost.(*matrix.Dense); ok {
		for i := 0; i < n; i++ {
			copy(flat[i*m:(i+1)*m], d.RawRowView(i))
		}
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				v, err := cost.At(i, j)
				if err != nil {
					return nil, err
				}
				flat[i*m+j] = v
			}
		}
	}
	for k, v := range flat {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("dtw: cost(%d,%d) is NaN: %w", k/m, k%m, ErrBadInput)
		}
	}

	return func(i, j int) float64 { return flat[i*m+j] }, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
