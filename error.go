// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"errors"
	"fmt"
)

// ErrEmptyRange indicates a ProgressTimer whose target equals its start,
// so no percentage can be computed.
var ErrEmptyRange = errors.New("progress range is empty")

// ErrEstimateOverflow indicates a projected run duration that cannot be
// represented as a time.Duration, i.e. one longer than about 292 years.
var ErrEstimateOverflow = errors.New("projected duration overflows time.Duration")

// RangeError reports the range of a ProgressTimer that could not be used
// to compute progress. It wraps ErrEmptyRange, so errors.Is can be used
// to test for it.
type RangeError struct {
	// Name is the name of the ProgressTimer.
	Name string

	// Start is the count considered 0% complete.
	Start int64

	// Target is the count considered 100% complete.
	Target int64
}

func (re *RangeError) Error() string {
	return fmt.Sprintf("%s: [%s] start=%d target=%d", ErrEmptyRange, re.Name, re.Start, re.Target)
}

func (re *RangeError) Unwrap() error {
	return ErrEmptyRange
}
