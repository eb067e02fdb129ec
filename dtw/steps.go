// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
	"strings"
)

// Step is one allowed move: from cell (i−DI, j−DJ) to (i, j), adding
// Weight·cost(i, j).
type Step struct {
	DI, DJ int
	Weight float64
}

// Norm names the normalization factor of a step pattern.
type Norm int

const (
	// NormNone marks a pattern whose distance cannot be normalized.
	NormNone Norm = iota
	// NormNM divides by N+M.
	NormNM
	// NormN divides by N, the length of the first sequence.
	NormN
	// NormM divides by M, the length of the second sequence.
	NormM
)

// StepPattern is a named set of steps with its normalization factor.
// Steps are tried in order; on ties the earlier step wins, which makes
// backtracking deterministic.
type StepPattern struct {
	Name  string
	Steps []Step
	Norm  Norm
}

// Predefined step patterns. Diagonal steps come first so ties prefer them.
var (
	// Symmetric1: unit weights, no normalization.
	Symmetric1 = StepPattern{
		Name:  "symmetric1",
		Steps: []Step{{1, 1, 1}, {1, 0, 1}, {0, 1, 1}},
		Norm:  NormNone,
	}

	// Symmetric2: diagonal weight 2, normalized by N+M.
	Symmetric2 = StepPattern{
		Name:  "symmetric2",
		Steps: []Step{{1, 1, 2}, {1, 0, 1}, {0, 1, 1}},
		Norm:  NormNM,
	}

	// Asymmetric: every step advances the first sequence by one and the
	// second by 0, 1 or 2; normalized by N.
	Asymmetric = StepPattern{
		Name:  "asymmetric",
		Steps: []Step{{1, 1, 1}, {1, 0, 1}, {1, 2, 1}},
		Norm:  NormN,
	}
)

// ParseStepPattern returns the predefined pattern with the given name
// (case-insensitive). An empty name selects Symmetric2.
//
// Errors:
//   - ErrBadInput for an unknown name.
func ParseStepPattern(name string) (StepPattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Symmetric1.Name:
		return Symmetric1, nil
	case Symmetric2.Name, "":
		return Symmetric2, nil
	case Asymmetric.Name:
		return Asymmetric, nil
	default:
		return StepPattern{}, fmt.Errorf("dtw: step pattern %q: %w", name, ErrBadInput)
	}
}

// Validate checks that the pattern has between 1 and 127 steps, that every step
// moves forward (DI, DJ ≥ 0, not both zero) and that weights are finite and
// positive.
func (p StepPattern) Validate() error {
	if len(p.Steps) == 0 || len(p.Steps) > math.MaxInt8 {
		return fmt.Errorf("dtw: pattern %q has %d steps: %w", p.Name, len(p.Steps), ErrBadInput)
	}
	for k, s := range p.Steps {
		if s.DI < 0 || s.DJ < 0 || s.DI+s.DJ == 0 {
			return fmt.Errorf("dtw: pattern %q step %d (%d,%d): %w", p.Name, k, s.DI, s.DJ, ErrBadInput)
		}
		if !(s.Weight > 0) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("dtw: pattern %q step %d weight %g: %w", p.Name, k, s.Weight, ErrBadInput)
		}
	}
	if p.Norm < NormNone || p.Norm > NormM {
		return fmt.Errorf("dtw: pattern %q norm %d: %w", p.Name, p.Norm, ErrBadInput)
	}

	return nil
}

// Normalizable reports whether the pattern has a normalization factor.
func (p StepPattern) Normalizable() bool {
	return p.Norm != NormNone
}

// Factor returns the normalization factor for sequences of lengths n and m,
// or NaN when the pattern is not normalizable.
func (p StepPattern) Factor(n, m int) float64 {
	switch p.Norm {
	case NormNM:
		return float64(n + m)
	case NormN:
		return float64(n)
	case NormM:
		return float64(m)
	default:
		return math.NaN()
	}
}

// maxDI is the farthest row a step reaches back to.
func (p StepPattern) maxDI() int {
	r := 0
	for _, s := range p.Steps {
		r = max(r, s.DI)
	}

	return r
}
