// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/katalvlaran/squat/centering"
	"github.com/katalvlaran/squat/frechet"
	"github.com/katalvlaran/squat/internal/config"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
)

// mean writes the pointwise Fréchet mean (or median) of the input files as
// CSV. With -smooth and a single file it writes the moving average instead.
func mean(ctx context.Context, args []string, stdout io.Writer, median bool) error {
	name, doc := "mean", "pointwise Fréchet mean of a sample, written as CSV"
	if median {
		name, doc = "median", "pointwise Fréchet median of a sample, written as CSV"
	}
	sc := newSubcommand(name, doc, "files...")
	var (
		tol    float64
		iter   int
		smooth int
	)
	sc.Float64Var(&tol, "tol", 0, "convergence tolerance (overrides frechet.tolerance)")
	sc.IntVar(&iter, "max-iter", 0, "iteration cap (overrides frechet.max_iterations)")
	sc.IntVar(&smooth, "smooth", 0, "odd moving-average width; requires a single input file")
	cfg, log, err := sc.setup(args, func(cfg *config.Config, flag string) {
		switch flag {
		case "tol":
			cfg.Frechet.Tolerance = tol
		case "max-iter":
			cfg.Frechet.MaxIterations = iter
		}
	})
	if err != nil {
		return err
	}
	sample, _, err := readSample(sc.Args())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := cfg.FrechetOptions(log)

	var res frechet.SeriesResult
	switch {
	case smooth != 0 && len(sample) != 1:
		return fmt.Errorf("-smooth needs exactly one input file, got %d", len(sample))
	case smooth != 0:
		res, err = frechet.MovingAverage(sample[0], smooth, opts)
	case median:
		res, err = frechet.MedianSeries(sample, opts)
	default:
		res, err = frechet.MeanSeries(sample, opts)
	}
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		log.Warn("best-effort estimate", "error", err)
	}

	return qts.WriteCSV(stdout, res.Series)
}

// statsView is the YAML summary printed by center.
type statsView struct {
	ByRow    bool         `yaml:"by_row"`
	Labels   []string     `yaml:"labels"`
	RowMeans [][4]float64 `yaml:"row_means,omitempty"`
	Mean     [][5]float64 `yaml:"mean,omitempty"`
	SD       []float64    `yaml:"sd,omitempty"`
	Written  []string     `yaml:"written,omitempty"`
}

// center centers (and optionally scales) the sample. Transformed series
// are written to -outdir as <label>.csv; the statistics go to stdout as
// YAML.
func center(ctx context.Context, args []string, stdout io.Writer) error {
	sc := newSubcommand("center", "tangent-space centering and scaling of a sample", "files...")
	var (
		noCenter, scale, byRow bool
		outdir                 string
	)
	sc.BoolVar(&noCenter, "no-center", false, "do not center (overrides centering.center)")
	sc.BoolVar(&scale, "scale", false, "scale to unit spread (overrides centering.scale)")
	sc.BoolVar(&byRow, "by-row", false, "one mean per series instead of per time point (overrides centering.by_row)")
	sc.StringVar(&outdir, "outdir", "", "directory receiving the transformed series")
	cfg, log, err := sc.setup(args, func(cfg *config.Config, flag string) {
		switch flag {
		case "no-center":
			cfg.Centering.Center = !noCenter
		case "scale":
			cfg.Centering.Scale = scale
		case "by-row":
			cfg.Centering.ByRow = byRow
		}
	})
	if err != nil {
		return err
	}
	sample, labels, err := readSample(sc.Args())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := centering.CenterAndScale(sample, cfg.CenteringOptions(log))
	if err != nil {
		return err
	}

	view := statsView{ByRow: res.Stats.ByRow, Labels: labels, SD: res.Stats.SD}
	for _, m := range res.Stats.RowMeans {
		view.RowMeans = append(view.RowMeans, m.Array())
	}
	for i, m := range res.Stats.Mean.Rot {
		view.Mean = append(view.Mean, row(res.Stats.Mean.Time[i], m))
	}
	if outdir != "" {
		for i, q := range res.Sample {
			path := filepath.Join(outdir, labels[i]+".csv")
			if err := writeSeries(path, q); err != nil {
				return err
			}
			view.Written = append(view.Written, path)
		}
		log.Info("centered sample written", "dir", outdir, "series", len(res.Sample))
	}

	return encodeYAML(stdout, view)
}

func row(t float64, q quaternion.Quaternion) [5]float64 {
	return [5]float64{t, q.W, q.X, q.Y, q.Z}
}
