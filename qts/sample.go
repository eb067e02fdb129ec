// SPDX-License-Identifier: MIT

package qts

import (
	"fmt"

	"github.com/katalvlaran/squat/quaternion"
)

// Sample is an ordered collection of independent QTS.
type Sample []QTS

// Clone returns a deep copy of the sample.
func (s Sample) Clone() Sample {
	out := make(Sample, len(s))
	for i, q := range s {
		out[i] = q.Clone()
	}

	return out
}

// Validate checks that the sample is non-empty and every member is valid.
func (s Sample) Validate() error {
	if len(s) == 0 {
		return ErrEmptySample
	}
	for i, q := range s {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("qts: member %d: %w", i, err)
		}
	}

	return nil
}

// CheckGrid validates the sample and verifies that all members share the
// grid of the first one. It returns the common grid length M.
func (s Sample) CheckGrid() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	for i := 1; i < len(s); i++ {
		if err := SameGrid(s[0], s[i]); err != nil {
			return 0, fmt.Errorf("qts: member %d vs member 0: %w", i, err)
		}
	}

	return s[0].Len(), nil
}

// Column returns the N rotations observed at time index t.
// The caller guarantees t is valid for every member (see CheckGrid).
func (s Sample) Column(t int) []quaternion.Quaternion {
	out := make([]quaternion.Quaternion, len(s))
	for i, q := range s {
		out[i] = q.Rot[t]
	}

	return out
}

// CheckLabels returns ErrInvalidConfiguration when a per-member vector
// (labels, memberships, highlights) does not have one entry per member.
func (s Sample) CheckLabels(n int, what string) error {
	if n != len(s) {
		return fmt.Errorf("qts: %s has %d entries for %d series: %w", what, n, len(s), ErrInvalidConfiguration)
	}

	return nil
}
