// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: SQUAT_DISTANCE_WORKERS=8
// overrides distance.workers.
const EnvPrefix = "SQUAT"

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path searches for squat.yaml in the
// working directory and ./configs; a missing file means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("squat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

// setDefaults mirrors DefaultConfig so that every key is known to viper
// and can be overridden from the environment.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("distance.metric", d.Distance.Metric)
	v.SetDefault("distance.workers", d.Distance.Workers)
	v.SetDefault("distance.step_pattern", d.Distance.StepPattern)
	v.SetDefault("distance.normalize", d.Distance.Normalize)
	v.SetDefault("distance.renormalize", d.Distance.Renormalize)
	v.SetDefault("distance.window", d.Distance.Window)

	v.SetDefault("frechet.tolerance", d.Frechet.Tolerance)
	v.SetDefault("frechet.max_iterations", d.Frechet.MaxIterations)

	v.SetDefault("centering.center", d.Centering.Center)
	v.SetDefault("centering.scale", d.Centering.Scale)
	v.SetDefault("centering.by_row", d.Centering.ByRow)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
