// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/qts"
)

// Metric selects a dissimilarity.
type Metric int

const (
	// L2 is the L2-in-time geodesic distance.
	L2 Metric = iota
	// Pearson is one minus the mean channel correlation in tangent space.
	Pearson
	// DTW is the dynamic-time-warping distance over geodesic costs.
	DTW
)

var metricNames = [...]string{L2: "l2", Pearson: "pearson", DTW: "dtw"}

// String returns the lower-case metric name.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// ParseMetric maps "l2", "pearson" or "dtw" (case-insensitive) to a Metric.
//
// Errors:
//   - qts.ErrInvalidConfiguration for any other name.
func ParseMetric(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range metricNames {
		if s == n {
			return Metric(m), nil
		}
	}

	return 0, fmt.Errorf("distance: metric %q: %w", name, qts.ErrInvalidConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(b []byte) error {
	v, err := ParseMetric(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Options tunes the metrics. Only DTW reads Pattern, Window and Normalize.
//
//   - Pattern     DTW step pattern (zero value means Symmetric2).
//   - Window      Sakoe–Chiba radius; 0 or −1 means no window.
//   - Normalize   return the normalized DTW distance.
//   - Renormalize rescale every rotation to unit norm before computing.
type Options struct {
	Pattern     dtw.StepPattern
	Window      int
	Normalize   bool
	Renormalize bool
}

// DefaultOptions returns Symmetric2, no window, normalized DTW and no
// re-normalization.
func DefaultOptions() Options {
	return Options{Pattern: dtw.Symmetric2, Window: -1, Normalize: true}
}
