// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/squat/distance"
	"github.com/katalvlaran/squat/distmat"
	"github.com/katalvlaran/squat/internal/config"
	"github.com/katalvlaran/squat/logging"
)

// distanceFlags registers the flags shared by dist and dtw and returns the
// function copying the explicitly set ones into the configuration.
func distanceFlags(sc *subcommand) func(cfg *config.Config, flag string) {
	var (
		metric, pattern        string
		workers, window        int
		normalize, renormalize bool
	)
	sc.StringVar(&metric, "metric", "", "l2, pearson or dtw (overrides distance.metric)")
	sc.StringVar(&pattern, "pattern", "", "DTW step pattern: symmetric1, symmetric2 or asymmetric (overrides distance.step_pattern)")
	sc.IntVar(&workers, "workers", 0, "concurrent pair evaluations (overrides distance.workers)")
	sc.IntVar(&window, "window", 0, "Sakoe-Chiba radius, 0 or -1 for none (overrides distance.window)")
	sc.BoolVar(&normalize, "normalize", false, "normalized DTW distance (overrides distance.normalize)")
	sc.BoolVar(&renormalize, "renormalize", false, "rescale rotations to unit norm first (overrides distance.renormalize)")

	return func(cfg *config.Config, flag string) {
		switch flag {
		case "metric":
			cfg.Distance.Metric = metric
		case "pattern":
			cfg.Distance.StepPattern = pattern
		case "workers":
			cfg.Distance.Workers = workers
		case "window":
			cfg.Distance.Window = window
		case "normalize":
			cfg.Distance.Normalize = normalize
		case "renormalize":
			cfg.Distance.Renormalize = renormalize
		}
	}
}

// dist writes the pairwise distance structure of the input files as YAML,
// as a square CSV matrix with -csv, or as a compressed binary file with
// -out. With -from the structure is read from a square CSV matrix instead
// of being computed.
func dist(ctx context.Context, args []string, stdout io.Writer) error {
	sc := newSubcommand("dist", "pairwise dissimilarities of a sample", "files...")
	var (
		out, from string
		asCSV     bool
	)
	sc.StringVar(&out, "out", "", "write the compressed binary encoding to this file instead of YAML")
	sc.StringVar(&from, "from", "", "read a square CSV dissimilarity matrix instead of series files")
	sc.BoolVar(&asCSV, "csv", false, "print a square CSV matrix instead of YAML")
	apply := distanceFlags(sc)
	cfg, log, err := sc.setup(args, apply)
	if err != nil {
		return err
	}

	var d *distmat.Distance
	if from != "" {
		d, err = readDistance(from, cfg.Distance.Metric)
	} else {
		d, err = computeDistance(ctx, sc.Args(), cfg, log)
	}
	if err != nil {
		return err
	}

	switch {
	case out != "":
		return saveDistance(out, d, log)
	case asCSV:
		return d.WriteCSV(stdout)
	default:
		return encodeYAML(stdout, d)
	}
}

func computeDistance(ctx context.Context, paths []string, cfg *config.Config, log *logging.Logger) (*distmat.Distance, error) {
	sample, labels, err := readSample(paths)
	if err != nil {
		return nil, err
	}
	metric, err := cfg.Metric()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.PairwiseOptions(log)
	if err != nil {
		return nil, err
	}
	opts.Labels = labels
	opts.Progress = func(done, total int) {
		if done == total || done%100 == 0 {
			log.Debug("pairs done", "done", done, "total", total)
		}
	}

	return distmat.Pairwise(ctx, sample, metric, opts)
}

func readDistance(path, method string) (*distmat.Distance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := distmat.ReadCSV(f, method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

func saveDistance(path string, d *distmat.Distance, log *logging.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("distance written", "path", path, "size", d.Size())

	return nil
}

// alignmentView is the YAML shape printed by dtw.
type alignmentView struct {
	Distance           float64  `yaml:"distance"`
	NormalizedDistance float64  `yaml:"normalized_distance"`
	Path               [][2]int `yaml:"path,flow"`
}

// align prints the DTW distances and warping path between two files.
func align(ctx context.Context, args []string, stdout io.Writer) error {
	sc := newSubcommand("dtw", "DTW alignment of two series", "first.csv second.csv")
	apply := distanceFlags(sc)
	cfg, _, err := sc.setup(args, apply)
	if err != nil {
		return err
	}
	if sc.NArg() != 2 {
		return fmt.Errorf("dtw needs exactly two input files, got %d", sc.NArg())
	}
	sample, _, err := readSample(sc.Args())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	opts, err := cfg.DistanceOptions()
	if err != nil {
		return err
	}
	res, err := distance.DTWAlignWith(sample[0], sample[1], opts)
	if err != nil {
		return err
	}

	view := alignmentView{Distance: res.Distance, NormalizedDistance: res.NormalizedDistance}
	for _, c := range res.Path {
		view.Path = append(view.Path, [2]int{c.I, c.J})
	}

	return encodeYAML(stdout, view)
}
