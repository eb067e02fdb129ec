// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/squat/distance"
	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/internal/config"
	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mut     func(*config.Config)
		wantErr bool
	}{
		{"default config is valid", func(*config.Config) {}, false},
		{"unknown metric", func(c *config.Config) { c.Distance.Metric = "cosine" }, true},
		{"zero workers", func(c *config.Config) { c.Distance.Workers = 0 }, true},
		{"unknown pattern", func(c *config.Config) { c.Distance.StepPattern = "rabiner" }, true},
		{"symmetric1 normalized", func(c *config.Config) { c.Distance.StepPattern = "symmetric1" }, true},
		{"symmetric1 raw", func(c *config.Config) {
			c.Distance.StepPattern, c.Distance.Normalize = "symmetric1", false
		}, false},
		{"bad window", func(c *config.Config) { c.Distance.Window = -2 }, true},
		{"zero tolerance", func(c *config.Config) { c.Frechet.Tolerance = 0 }, true},
		{"zero iterations", func(c *config.Config) { c.Frechet.MaxIterations = 0 }, true},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mut(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	cfg := config.DefaultConfig()
	cfg.Distance.Metric = "cosine"
	assert.ErrorIs(t, cfg.Validate(), qts.ErrInvalidConfiguration)
	cfg = config.DefaultConfig()
	cfg.Distance.StepPattern = "symmetric1"
	assert.ErrorIs(t, cfg.Validate(), dtw.ErrNonNormalizableStepPattern)
	cfg = config.DefaultConfig()
	cfg.Logging.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), logging.ErrUnknownFormat)
}

func TestLoadDefaults(t *testing.T) {
	// A search that finds no file yields the defaults.
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
distance:
  metric: dtw
  workers: 4
  step_pattern: asymmetric
  window: 3
frechet:
  max_iterations: 50
centering:
  scale: true
logging:
  level: debug
  format: json
`), 0o600))
	t.Setenv("SQUAT_DISTANCE_WORKERS", "8")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dtw", cfg.Distance.Metric)
	assert.Equal(t, 8, cfg.Distance.Workers, "environment overrides the file")
	assert.Equal(t, 3, cfg.Distance.Window)
	assert.True(t, cfg.Distance.Normalize, "default kept")
	assert.Equal(t, 50, cfg.Frechet.MaxIterations)
	assert.Equal(t, 1e-9, cfg.Frechet.Tolerance)
	assert.True(t, cfg.Centering.Center)
	assert.True(t, cfg.Centering.Scale)
	assert.Equal(t, "debug", cfg.Logging.Level)

	m, err := cfg.Metric()
	require.NoError(t, err)
	assert.Equal(t, distance.DTW, m)
	opts, err := cfg.PairwiseOptions(logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Workers)
	assert.Equal(t, dtw.Asymmetric.Name, opts.Distance.Pattern.Name)
	assert.Equal(t, 3, opts.Distance.Window)

	c := cfg.CenteringOptions(nil)
	assert.True(t, c.Scale)
	assert.True(t, c.KeepStats)
	assert.Equal(t, 50, c.Frechet.MaxIterations)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("distance:\n  metric: cosine\n"), 0o600))
	_, err := config.Load(path)
	assert.ErrorIs(t, err, qts.ErrInvalidConfiguration)

	require.NoError(t, os.WriteFile(path, []byte("distance: [\n"), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}
