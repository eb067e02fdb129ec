// SPDX-License-Identifier: MIT

package alignment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
)

// CentroidType selects how the aligner summarizes a cluster.
type CentroidType int

const (
	// CentroidMean averages the aligned members.
	CentroidMean CentroidType = iota
	// CentroidMedoid picks the most central member.
	CentroidMedoid
)

var centroidNames = [...]string{CentroidMean: "mean", CentroidMedoid: "medoid"}

// String returns the lower-case name.
func (c CentroidType) String() string {
	if c < 0 || int(c) >= len(centroidNames) {
		return fmt.Sprintf("CentroidType(%d)", int(c))
	}

	return centroidNames[c]
}

// ParseCentroidType maps "mean" or "medoid" to a CentroidType.
func ParseCentroidType(name string) (CentroidType, error) {
	i, err := parseName(name, centroidNames[:], "centroid type")

	return CentroidType(i), err
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CentroidType) UnmarshalText(b []byte) error {
	v, err := ParseCentroidType(string(b))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// WarpingClass selects the family of time warpings the aligner may apply.
type WarpingClass int

const (
	// WarpNone disables warping.
	WarpNone WarpingClass = iota
	// WarpShift allows t ↦ t + b.
	WarpShift
	// WarpDilation allows t ↦ a·t.
	WarpDilation
	// WarpAffine allows t ↦ a·t + b.
	WarpAffine
)

var warpingNames = [...]string{WarpNone: "none", WarpShift: "shift", WarpDilation: "dilation", WarpAffine: "affine"}

// String returns the lower-case name.
func (w WarpingClass) String() string {
	if w < 0 || int(w) >= len(warpingNames) {
		return fmt.Sprintf("WarpingClass(%d)", int(w))
	}

	return warpingNames[w]
}

// ParseWarpingClass maps "none", "shift", "dilation" or "affine" to a
// WarpingClass.
func ParseWarpingClass(name string) (WarpingClass, error) {
	i, err := parseName(name, warpingNames[:], "warping class")

	return WarpingClass(i), err
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WarpingClass) UnmarshalText(b []byte) error {
	v, err := ParseWarpingClass(string(b))
	if err != nil {
		return err
	}
	*w = v

	return nil
}

func parseName(name string, names []string, what string) (int, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range names {
		if s == n {
			return i, nil
		}
	}

	return 0, fmt.Errorf("alignment: %s %q: %w", what, name, qts.ErrInvalidConfiguration)
}

// Config describes one clustering + alignment problem and how BestOf
// restarts it.
//
//   - Clusters     number of clusters K, 1 ≤ K ≤ N.
//   - Centroid     cluster summary passed to the aligner.
//   - Warping      warping family passed to the aligner.
//   - Seeds        K distinct member indices used by the first restart;
//     nil draws them at random like every other restart.
//   - Restarts     number of independent runs (values < 1 mean 1).
//   - Workers      concurrent restarts (values < 1 mean 1).
//   - RandomSeed   seed of the per-restart seed draws.
//   - Logger       nil means the process-wide logger.
type Config struct {
	Clusters   int
	Centroid   CentroidType
	Warping    WarpingClass
	Seeds      []int
	Restarts   int
	Workers    int
	RandomSeed uint64
	Logger     *logging.Logger
}

// DefaultConfig returns one cluster, mean centroids, affine warping and a
// single restart.
func DefaultConfig() Config {
	return Config{Clusters: 1, Centroid: CentroidMean, Warping: WarpAffine, Restarts: 1, Workers: 1}
}

// Validate checks cfg against a sample of n series.
//
// Errors:
//   - qts.ErrInvalidConfiguration for an unknown enum value, K outside
//     [1, n], or seeds that are not K distinct indices in [0, n).
func (cfg Config) Validate(n int) error {
	if cfg.Centroid < 0 || int(cfg.Centroid) >= len(centroidNames) {
		return fmt.Errorf("alignment: %s: %w", cfg.Centroid, qts.ErrInvalidConfiguration)
	}
	if cfg.Warping < 0 || int(cfg.Warping) >= len(warpingNames) {
		return fmt.Errorf("alignment: %s: %w", cfg.Warping, qts.ErrInvalidConfiguration)
	}
	if cfg.Clusters < 1 || cfg.Clusters > n {
		return fmt.Errorf("alignment: %d clusters for %d series: %w", cfg.Clusters, n, qts.ErrInvalidConfiguration)
	}
	if cfg.Seeds == nil {
		return nil
	}

	return checkSeeds(cfg.Seeds, cfg.Clusters, n)
}

func checkSeeds(seeds []int, k, n int) error {
	if len(seeds) != k {
		return fmt.Errorf("alignment: %d seeds for %d clusters: %w", len(seeds), k, qts.ErrInvalidConfiguration)
	}
	seen := make(map[int]bool, k)
	for i, s := range seeds {
		if s < 0 || s >= n {
			return fmt.Errorf("alignment: seed %d = %d outside [0,%d): %w", i, s, n, qts.ErrInvalidConfiguration)
		}
		if seen[s] {
			return fmt.Errorf("alignment: seed %d repeats member %d: %w", i, s, qts.ErrInvalidConfiguration)
		}
		seen[s] = true
	}

	return nil
}
