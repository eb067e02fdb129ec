// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// MemoryMode controls how the accumulated-cost matrix is stored.
//
//   - FullMatrix keeps the entire N×M matrix and the chosen predecessor of
//     every cell, allowing path recovery. Memory: O(N·M).
//   - TwoRows keeps only the rows a step can reach back to (two for the
//     built-in patterns). Distance only. Memory: O(M).
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps a rolling window of rows; no path recovery.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Options configures an alignment.
//
// Fields:
//   - Pattern      step pattern; the zero value means Symmetric1.
//   - Window       Sakoe–Chiba band |i−j| ≤ Window when positive; 0 or −1
//     means no constraint.
//   - SlopePenalty added once per non-diagonal move (Δi ≠ Δj).
//   - Normalize    divide the distance by the pattern's factor.
//   - ReturnPath   backtrack and return the optimal path
//     (requires MemoryMode=FullMatrix).
//   - MemoryMode   FullMatrix or TwoRows.
type Options struct {
	Pattern      StepPattern
	Window       int
	SlopePenalty float64
	Normalize    bool
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the classic configuration: Symmetric1, no window,
// no penalty, raw distance, no path, FullMatrix.
func DefaultOptions() Options {
	return Options{Pattern: Symmetric1, Window: -1, MemoryMode: FullMatrix}
}

// validate resolves the zero-value pattern and checks option consistency.
func (o *Options) validate() (StepPattern, error) {
	p := o.Pattern
	if len(p.Steps) == 0 {
		p = Symmetric1
	}
	if err := p.Validate(); err != nil {
		return StepPattern{}, err
	}
	if o.Window < -1 {
		return StepPattern{}, fmt.Errorf("dtw: window %d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return StepPattern{}, fmt.Errorf("dtw: slope penalty %g: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return StepPattern{}, fmt.Errorf("dtw: %v: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return StepPattern{}, ErrPathNeedsMatrix
	}
	if o.Normalize && p.Norm == NormNone {
		return StepPattern{}, fmt.Errorf("dtw: pattern %q: %w", p.Name, ErrNonNormalizableStepPattern)
	}

	return p, nil
}

// Coord is one cell (I in the first sequence, J in the second) of a
// warping path.
type Coord struct {
	I, J int
}

// Result is the outcome of Align.
//
// Distance is the accumulated cost D(N−1, M−1) (+Inf when unreachable).
// NormalizedDistance is Distance divided by the pattern's factor, or NaN
// when the pattern has none. Path is set only when requested.
type Result struct {
	Distance           float64
	NormalizedDistance float64
	Path               []Coord
}
