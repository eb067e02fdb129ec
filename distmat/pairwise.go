// SPDX-License-Identifier: MIT

package distmat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/squat/distance"
	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called once per completed pair with the number of pairs
// done so far and the total. Calls are serialized.
type ProgressFunc func(done, total int)

// Options configures Pairwise.
//
//   - Workers   number of concurrent goroutines (values < 1 mean 1).
//   - ChunkSize pairs per task; 0 picks about four tasks per worker.
//   - Labels    item labels; nil means "1".."N".
//   - Distance  metric options forwarded to distance.Dissimilarity.
//   - Progress  optional completion callback.
//   - Logger    nil means the process-wide logger.
type Options struct {
	Workers   int
	ChunkSize int
	Labels    []string
	Distance  distance.Options
	Progress  ProgressFunc
	Logger    *logging.Logger
}

// DefaultOptions returns one worker and the default metric options.
func DefaultOptions() Options {
	return Options{Workers: 1, Distance: distance.DefaultOptions()}
}

// Pairwise computes the dissimilarity of every unordered pair of sample
// members under metric.
//
// Implementation:
//   - Stage 1: validate the sample and the labels.
//   - Stage 2: split the C(N,2) pair indices into contiguous chunks and run
//     them on an errgroup limited to Workers goroutines. Each pair writes
//     only its own slot of the output slice.
//   - Stage 3: on the first failure the group context is cancelled, the
//     remaining chunks stop before their next pair and the error is
//     returned with the pair indices. Cancelling ctx has the same effect.
//
// The result is identical for any number of workers.
//
// Complexity: C(N,2) metric evaluations; O(N²) memory for the result.
func Pairwise(ctx context.Context, sample qts.Sample, metric distance.Metric, opts Options) (*Distance, error) {
	if err := sample.Validate(); err != nil {
		return nil, err
	}
	n := len(sample)
	if opts.Labels != nil {
		if err := sample.CheckLabels(len(opts.Labels), "labels"); err != nil {
			return nil, err
		}
	}
	workers := max(1, opts.Workers)
	total := n * (n - 1) / 2
	chunk := opts.ChunkSize
	if chunk < 1 {
		chunk = max(1, (total+4*workers-1)/(4*workers))
	}
	log := logging.Or(opts.Logger).With("metric", metric.String(), "size", n)
	log.Debug("pairwise start", "pairs", total, "workers", workers, "chunk", chunk)
	start := time.Now()

	values := make([]float64, total)
	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < total; lo += chunk {
		lo, hi := lo, min(total, lo+chunk)
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				i, j := PairAt(n, k)
				d, err := distance.Dissimilarity(sample[i], sample[j], metric, opts.Distance)
				if err != nil {
					return fmt.Errorf("distmat: pair (%d,%d): %w", i, j, err)
				}
				values[k] = d
				if opts.Progress != nil {
					mu.Lock()
					done++
					opts.Progress(done, total)
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("pairwise failed", "error", err)
		return nil, err
	}
	log.Info("pairwise done", "pairs", total, "elapsed", time.Since(start).String())

	return New(n, values, opts.Labels, metric.String())
}
