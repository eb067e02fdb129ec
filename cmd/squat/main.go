// SPDX-License-Identifier: MIT

// squat computes Fréchet statistics, centered samples and pairwise
// dissimilarities of quaternion time series stored as CSV files
// (columns time,w,x,y,z; one series per file).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "canceled")
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "squat:", err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: squat $cmd [flags] files...
valid $cmd are 'mean', 'median', 'center', 'dist', 'dtw'
for help: squat $cmd -help
`)

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "mean":
		return mean(ctx, args, stdout, false)
	case "median":
		return mean(ctx, args, stdout, true)
	case "center":
		return center(ctx, args, stdout)
	case "dist":
		return dist(ctx, args, stdout)
	case "dtw":
		return align(ctx, args, stdout)
	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
