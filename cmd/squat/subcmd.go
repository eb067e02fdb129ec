// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/squat/internal/config"
	"github.com/katalvlaran/squat/logging"
)

// subcommand is a flag set with the flags every command shares.
type subcommand struct {
	*flag.FlagSet
	configPath string
	logLevel   string
	logFormat  string
}

func newSubcommand(name, doc, args string) *subcommand {
	sc := &subcommand{FlagSet: flag.NewFlagSet(name, flag.ContinueOnError)}
	sc.StringVar(&sc.configPath, "config", "", "configuration file (default: ./squat.yaml if present)")
	sc.StringVar(&sc.logLevel, "log-level", "", "log level (overrides logging.level)")
	sc.StringVar(&sc.logFormat, "log-format", "", "log format: json or console (overrides logging.format)")
	sc.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", doc)
		fmt.Fprintf(os.Stderr, "  squat %s [flags] %s\n\n", name, args)
		fmt.Fprintf(os.Stderr, "flags:\n")
		sc.PrintDefaults()
	}

	return sc
}

// setup parses args, loads the configuration, lets apply copy explicitly
// set flags over it and installs the configured logger.
func (sc *subcommand) setup(args []string, apply func(cfg *config.Config, name string)) (*config.Config, *logging.Logger, error) {
	if err := sc.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return nil, nil, err
	}
	sc.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Logging.Level = sc.logLevel
		case "log-format":
			cfg.Logging.Format = sc.logFormat
		default:
			if apply != nil {
				apply(cfg, f.Name)
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}
	log, err := logging.NewFromConfig(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	logging.SetGlobal(log)

	return cfg, log, nil
}
