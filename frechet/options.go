// SPDX-License-Identifier: MIT

package frechet

import (
	"fmt"

	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
)

// Defaults for Options.
const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 100
)

// Options configures the fixed-point iteration.
//
//   - Tolerance     stop once ‖step‖ < Tolerance (must be > 0).
//   - MaxIterations iteration cap (must be ≥ 1).
//   - Logger        receives the non-convergence warning; nil means the
//     process-wide logger.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Logger        *logging.Logger
}

// DefaultOptions returns Tolerance 1e-9 and MaxIterations 100.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

func (o Options) validate() error {
	if !(o.Tolerance > 0) || o.MaxIterations < 1 {
		return fmt.Errorf("frechet: tolerance %g, max iterations %d: %w",
			o.Tolerance, o.MaxIterations, qts.ErrInvalidConfiguration)
	}

	return nil
}
