// SPDX-License-Identifier: MIT

package frechet

import (
	"fmt"

	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
	"gonum.org/v1/gonum/floats"
)

// WeightFunc returns the unnormalized weight of an input lying at geodesic
// distance d from the current estimate.
type WeightFunc func(d float64) float64

// Uniform weighs every input equally (Fréchet / Karcher mean).
func Uniform(float64) float64 { return 1 }

// Weiszfeld weighs an input by the inverse of its distance (geometric
// median). An input coinciding with the estimate (d < quaternion.Epsilon)
// gets weight 0.
func Weiszfeld(d float64) float64 {
	if d < quaternion.Epsilon {
		return 0
	}

	return 1 / d
}

// Result is the outcome of one fixed-point solve.
type Result struct {
	Rotation   quaternion.Quaternion
	Iterations int
	Converged  bool
	// Step is the norm of the last tangent update.
	Step float64
}

// Err returns nil when the solve converged and an error wrapping
// ErrNotConverged otherwise.
func (r Result) Err() error {
	if r.Converged {
		return nil
	}

	return fmt.Errorf("frechet: %d iterations, last step %.3g: %w", r.Iterations, r.Step, ErrNotConverged)
}

// Solve runs the weighted fixed-point iteration over qs.
//
// Implementation:
//   - Stage 1: validate options and normalize every input.
//   - Stage 2: K = 1 returns the input with zero iterations.
//   - Stage 3: μ₀ = q₀; each step aligns the inputs onto μ's hemisphere,
//     maps them to μ's tangent space, averages with normalized weights and
//     moves μ along the resulting vector. When every weight is zero the
//     step is zero.
//   - Stage 4: stop when ‖step‖ < Tolerance or at MaxIterations; in the
//     latter case log a warning and return Converged=false.
//
// Errors:
//   - qts.ErrEmptySample for no inputs.
//   - qts.ErrInvalidConfiguration for bad options.
//   - quaternion.ErrDegenerateQuaternion (with the index) for zero inputs.
//
// Complexity: O(K·MaxIterations) time, O(K) memory.
func Solve(qs []quaternion.Quaternion, weight WeightFunc, opts Options) (Result, error) {
	if len(qs) == 0 {
		return Result{}, qts.ErrEmptySample
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	unit := make([]quaternion.Quaternion, len(qs))
	for i, q := range qs {
		u, err := quaternion.Normalize(q)
		if err != nil {
			return Result{}, fmt.Errorf("frechet: input %d: %w", i, err)
		}
		unit[i] = u
	}
	if len(unit) == 1 {
		return Result{Rotation: unit[0], Converged: true}, nil
	}

	mu := unit[0]
	w := make([]float64, len(unit))
	logs := make([]quaternion.Vec3, len(unit))
	res := Result{}
	for it := 1; it <= opts.MaxIterations; it++ {
		for i, q := range unit {
			logs[i] = quaternion.LogAt(mu, q)
			w[i] = weight(quaternion.GeodesicDistance(mu, q))
		}
		var step quaternion.Vec3
		if total := floats.Sum(w); total > 0 {
			for i, v := range logs {
				step = step.Add(v.Scale(w[i] / total))
			}
		}
		next, err := quaternion.Normalize(quaternion.ExpAt(mu, step))
		if err != nil {
			return Result{}, fmt.Errorf("frechet: iteration %d: %w", it, err)
		}
		mu = next
		res.Iterations = it
		res.Step = step.Norm()
		if res.Step < opts.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Rotation = mu
	if !res.Converged {
		logging.Or(opts.Logger).Warn("frechet iteration hit the cap",
			"iterations", res.Iterations, "step", res.Step, "tolerance", opts.Tolerance)
	}

	return res, nil
}

// Mean returns the Fréchet mean of qs (uniform weights).
func Mean(qs []quaternion.Quaternion, opts Options) (Result, error) {
	return Solve(qs, Uniform, opts)
}

// Median returns the Fréchet median of qs (Weiszfeld weights).
func Median(qs []quaternion.Quaternion, opts Options) (Result, error) {
	return Solve(qs, Weiszfeld, opts)
}
