// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNegativeDuration is returned when a TimerConfig contains a negative duration.
var ErrNegativeDuration = errors.New("durations must not be negative")

// TimerConfig is the externally configurable form of a Timer. Durations
// are written as Go duration strings, e.g. "30s" or "5m".
type TimerConfig struct {
	// Period is the Timer's interval. Values below MinPeriod, including
	// an unset period, result in MinPeriod.
	Period time.Duration `json:"period" yaml:"period"`

	// Offset is the delay before the first firing. If unset, the first
	// firing happens one Period after construction.
	Offset time.Duration `json:"offset,omitempty" yaml:"offset,omitempty"`

	// Skip is the skip policy for missed intervals. If unset, missed
	// intervals are skipped.
	Skip *bool `json:"skip,omitempty" yaml:"skip,omitempty"`
}

// ParseTimerConfig decodes a YAML document into a TimerConfig. Unknown
// fields are rejected. An empty document yields the zero TimerConfig.
func ParseTimerConfig(data []byte) (tc TimerConfig, err error) {
	d := yaml.NewDecoder(bytes.NewReader(data))
	d.KnownFields(true)
	if err = d.Decode(&tc); errors.Is(err, io.EOF) {
		err = nil
	}

	if err == nil {
		err = tc.Validate()
	}

	return
}

// Validate checks this configuration for values a Timer cannot use.
func (tc TimerConfig) Validate() error {
	if tc.Period < 0 || tc.Offset < 0 {
		return fmt.Errorf("%w: period=%s offset=%s", ErrNegativeDuration, tc.Period, tc.Offset)
	}

	return nil
}

// Options returns the TimerOptions described by this configuration.
func (tc TimerConfig) Options() (opts []TimerOption) {
	if tc.Offset != 0 {
		opts = append(opts, WithOffset(tc.Offset))
	}

	if tc.Skip != nil {
		opts = append(opts, WithSkip(*tc.Skip))
	}

	return
}

// NewTimer builds a Timer from this configuration. Any extra options
// are applied after the configured ones.
func (tc TimerConfig) NewTimer(extra ...TimerOption) *Timer {
	return NewTimer(tc.Period, append(tc.Options(), extra...)...)
}
