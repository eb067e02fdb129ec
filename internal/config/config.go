// SPDX-License-Identifier: MIT

// Package config holds the configuration of the squat command.
package config

import (
	"fmt"
	"io"

	"github.com/katalvlaran/squat/centering"
	"github.com/katalvlaran/squat/distance"
	"github.com/katalvlaran/squat/distmat"
	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/frechet"
	"github.com/katalvlaran/squat/logging"
)

// Config is the complete command configuration.
type Config struct {
	Distance  DistanceConfig  `mapstructure:"distance"`
	Frechet   FrechetConfig   `mapstructure:"frechet"`
	Centering CenteringConfig `mapstructure:"centering"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DistanceConfig configures dist and dtw.
type DistanceConfig struct {
	Metric      string `mapstructure:"metric"`       // l2, pearson or dtw
	Workers     int    `mapstructure:"workers"`      // concurrent pair evaluations
	StepPattern string `mapstructure:"step_pattern"` // symmetric1, symmetric2 or asymmetric
	Normalize   bool   `mapstructure:"normalize"`
	Renormalize bool   `mapstructure:"renormalize"`
	Window      int    `mapstructure:"window"` // Sakoe-Chiba radius, 0 or -1 for none
}

// FrechetConfig configures mean and median.
type FrechetConfig struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

// CenteringConfig configures center.
type CenteringConfig struct {
	Center bool `mapstructure:"center"`
	Scale  bool `mapstructure:"scale"`
	ByRow  bool `mapstructure:"by_row"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // zerolog level name
	Format string `mapstructure:"format"` // json or console
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Distance: DistanceConfig{
			Metric:      "l2",
			Workers:     1,
			StepPattern: dtw.Symmetric2.Name,
			Normalize:   true,
			Window:      -1,
		},
		Frechet: FrechetConfig{
			Tolerance:     frechet.DefaultTolerance,
			MaxIterations: frechet.DefaultMaxIterations,
		},
		Centering: CenteringConfig{Center: true},
		Logging:   LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := distance.ParseMetric(c.Distance.Metric); err != nil {
		return err
	}
	if c.Distance.Workers < 1 {
		return fmt.Errorf("distance.workers must be at least 1, got %d", c.Distance.Workers)
	}
	p, err := dtw.ParseStepPattern(c.Distance.StepPattern)
	if err != nil {
		return err
	}
	if c.Distance.Normalize && !p.Normalizable() {
		return fmt.Errorf("distance.step_pattern %s: %w", p.Name, dtw.ErrNonNormalizableStepPattern)
	}
	if c.Distance.Window < -1 {
		return fmt.Errorf("distance.window must be -1 or non-negative, got %d", c.Distance.Window)
	}
	if !(c.Frechet.Tolerance > 0) {
		return fmt.Errorf("frechet.tolerance must be positive, got %g", c.Frechet.Tolerance)
	}
	if c.Frechet.MaxIterations < 1 {
		return fmt.Errorf("frechet.max_iterations must be at least 1, got %d", c.Frechet.MaxIterations)
	}
	if _, err := logging.NewFromConfig(io.Discard, c.Logging.Level, c.Logging.Format); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	return nil
}

// Metric returns the parsed distance metric.
func (c *Config) Metric() (distance.Metric, error) {
	return distance.ParseMetric(c.Distance.Metric)
}

// DistanceOptions returns the metric options of the distance section.
func (c *Config) DistanceOptions() (distance.Options, error) {
	p, err := dtw.ParseStepPattern(c.Distance.StepPattern)
	if err != nil {
		return distance.Options{}, err
	}

	return distance.Options{
		Pattern:     p,
		Window:      c.Distance.Window,
		Normalize:   c.Distance.Normalize,
		Renormalize: c.Distance.Renormalize,
	}, nil
}

// PairwiseOptions returns the orchestrator options of the distance section.
func (c *Config) PairwiseOptions(log *logging.Logger) (distmat.Options, error) {
	d, err := c.DistanceOptions()
	if err != nil {
		return distmat.Options{}, err
	}

	return distmat.Options{Workers: c.Distance.Workers, Distance: d, Logger: log}, nil
}

// FrechetOptions returns the solver options of the frechet section.
func (c *Config) FrechetOptions(log *logging.Logger) frechet.Options {
	return frechet.Options{
		Tolerance:     c.Frechet.Tolerance,
		MaxIterations: c.Frechet.MaxIterations,
		Logger:        log,
	}
}

// CenteringOptions returns the options of the centering section.
func (c *Config) CenteringOptions(log *logging.Logger) centering.Options {
	return centering.Options{
		Center:    c.Centering.Center,
		Scale:     c.Centering.Scale,
		ByRow:     c.Centering.ByRow,
		KeepStats: true,
		Frechet:   c.FrechetOptions(log),
	}
}
