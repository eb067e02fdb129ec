// SPDX-License-Identifier: MIT

package qts

import "errors"

// Error kinds shared by every squat package that consumes a QTS.
// Callers match them with errors.Is; messages carry the offending index.
var (
	// ErrEmptySeries indicates a QTS with no points.
	ErrEmptySeries = errors.New("qts: series must be non-empty")

	// ErrLengthMismatch indicates time and rotation slices of different length.
	ErrLengthMismatch = errors.New("qts: time and rotation lengths differ")

	// ErrUnsortedTime indicates time values that are not strictly increasing.
	ErrUnsortedTime = errors.New("qts: time must be strictly increasing")

	// ErrEmptySample indicates a sample with no members.
	ErrEmptySample = errors.New("qts: sample must contain at least one series")

	// ErrGridMismatch indicates unequal or misaligned time grids where
	// equality is required.
	ErrGridMismatch = errors.New("qts: time grids do not match")

	// ErrInvalidConfiguration indicates an unknown enum value or a vector
	// whose length does not match the sample size.
	ErrInvalidConfiguration = errors.New("qts: invalid configuration")

	// ErrMalformedCSV indicates tabular input that cannot be read as a QTS.
	ErrMalformedCSV = errors.New("qts: malformed csv input")
)
