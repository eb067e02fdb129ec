// SPDX-License-Identifier: MIT

package alignment

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
	"golang.org/x/sync/errgroup"
)

// Result is the restart selected by BestOf.
//
//   - CenterSeries  cluster centers mapped back to QTS.
//   - Restart       index of the selected restart.
//   - Seeds         seeds of the selected restart.
//   - Totals        total within-cluster dissimilarity of every restart.
//   - Tangents      the array handed to the aligner.
type Result struct {
	Outcome
	CenterSeries []qts.QTS
	Restart      int
	Seeds        []int
	Totals       []float64
	Tangents     *TangentArray
}

// BestOf runs cfg.Restarts independent alignments and keeps the one with
// the smallest total within-cluster dissimilarity (ties go to the earlier
// restart).
//
// Implementation:
//   - Stage 1: validate cfg and convert the sample with NewTangentArray.
//   - Stage 2: draw the seeds of every restart up front from a PCG stream
//     keyed by cfg.RandomSeed; restart 0 uses cfg.Seeds when given.
//   - Stage 3: run the restarts on an errgroup limited to cfg.Workers.
//     The first failing restart cancels the others.
//   - Stage 4: pick the best outcome and map its centers back to QTS.
//
// The selection does not depend on cfg.Workers.
func BestOf(ctx context.Context, aligner Aligner, sample qts.Sample, cfg Config) (*Result, error) {
	data, err := NewTangentArray(sample)
	if err != nil {
		return nil, err
	}
	n := len(sample)
	if err := cfg.Validate(n); err != nil {
		return nil, err
	}
	restarts := max(1, cfg.Restarts)
	seeds := drawSeeds(cfg, n, restarts)

	outcomes := make([]Outcome, restarts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for r := range outcomes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := aligner.Align(gctx, data, cfg, seeds[r])
			if err != nil {
				return fmt.Errorf("alignment: restart %d: %w", r, err)
			}
			if err := o.Validate(n, cfg.Clusters); err != nil {
				return fmt.Errorf("alignment: restart %d: %w", r, err)
			}
			outcomes[r] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	totals := make([]float64, restarts)
	for r, o := range outcomes {
		totals[r] = o.Total()
		if totals[r] < totals[best] {
			best = r
		}
	}
	logging.Or(cfg.Logger).Debug("restart selected",
		"restart", best, "total", totals[best], "restarts", restarts)

	centers, err := CentersToQTS(outcomes[best].Centers)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome:      outcomes[best],
		CenterSeries: centers,
		Restart:      best,
		Seeds:        seeds[best],
		Totals:       totals,
		Tangents:     data,
	}, nil
}

// drawSeeds returns K distinct member indices for each restart.
func drawSeeds(cfg Config, n, restarts int) [][]int {
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed^0x5851f42d4c957f2d))
	out := make([][]int, restarts)
	for r := range out {
		if r == 0 && cfg.Seeds != nil {
			out[r] = append([]int(nil), cfg.Seeds...)
			continue
		}
		out[r] = rng.Perm(n)[:cfg.Clusters]
	}

	return out
}
