// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrEmptyInput indicates an empty sequence or cost matrix.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option (window < −1, negative or
	// non-finite slope penalty, malformed step pattern) or a NaN cost.
	ErrBadInput = errors.New("dtw: invalid input or options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNonNormalizableStepPattern indicates that normalization was requested
	// for a step pattern without a normalization factor.
	ErrNonNormalizableStepPattern = errors.New("dtw: step pattern is not normalizable")

	// ErrNoFeasiblePath indicates that no warping path reaches the end cell
	// under the pattern and window, so no path can be returned.
	ErrNoFeasiblePath = errors.New("dtw: no feasible warping path")
)
