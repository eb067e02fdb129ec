// SPDX-License-Identifier: MIT

package alignment

import (
	"context"
	"fmt"

	"github.com/katalvlaran/squat/qts"
	"gonum.org/v1/gonum/floats"
)

// Aligner is an external joint clustering + alignment routine.
//
// Align receives the tangent array of the sample, the problem
// configuration and K distinct seed members, and returns the clustering.
// Implementations must honor ctx cancellation and must not retain data.
type Aligner interface {
	Align(ctx context.Context, data *TangentArray, cfg Config, seeds []int) (Outcome, error)
}

// AlignerFunc adapts an ordinary function to Aligner.
type AlignerFunc func(ctx context.Context, data *TangentArray, cfg Config, seeds []int) (Outcome, error)

// Align calls f.
func (f AlignerFunc) Align(ctx context.Context, data *TangentArray, cfg Config, seeds []int) (Outcome, error) {
	return f(ctx, data, cfg, seeds)
}

// Outcome is what an Aligner returns.
//
//   - Grids          aligned grid of each cluster.
//   - Centers        tangent-space center of each cluster.
//   - Labels         cluster index of each series.
//   - Dissimilarity  dissimilarity of each series to its center.
type Outcome struct {
	Grids         [][]float64
	Centers       []qts.Tangent
	Labels        []int
	Dissimilarity []float64
}

// Total returns the total within-cluster dissimilarity.
func (o Outcome) Total() float64 {
	return floats.Sum(o.Dissimilarity)
}

// Validate checks the outcome against a sample of n series and k clusters.
func (o Outcome) Validate(n, k int) error {
	if len(o.Centers) != k || len(o.Grids) != k {
		return fmt.Errorf("alignment: %d centers and %d grids for %d clusters: %w",
			len(o.Centers), len(o.Grids), k, qts.ErrInvalidConfiguration)
	}
	if len(o.Dissimilarity) != n {
		return fmt.Errorf("alignment: %d dissimilarities for %d series: %w", len(o.Dissimilarity), n, qts.ErrInvalidConfiguration)
	}

	return ValidateMemberships(o.Labels, n, k)
}

// ValidateMemberships checks that labels assigns each of n series to a
// cluster in [0, k).
//
// Errors:
//   - qts.ErrInvalidConfiguration for a length mismatch or a label out of
//     range (with its index).
func ValidateMemberships(labels []int, n, k int) error {
	if len(labels) != n {
		return fmt.Errorf("alignment: memberships have %d entries for %d series: %w", len(labels), n, qts.ErrInvalidConfiguration)
	}
	for i, l := range labels {
		if l < 0 || l >= k {
			return fmt.Errorf("alignment: membership %d = %d outside [0,%d): %w", i, l, k, qts.ErrInvalidConfiguration)
		}
	}

	return nil
}
