// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// ProgressState holds a snapshot of the state of a ProgressTimer.
type ProgressState struct {
	// Name is the label of the ProgressTimer.
	Name string `json:"name" yaml:"name"`

	// Start is the count considered 0% complete.
	Start int64 `json:"start" yaml:"start"`

	// Target is the count considered 100% complete.
	Target int64 `json:"target" yaml:"target"`

	// Current is the most recently reported count.
	Current int64 `json:"current" yaml:"current"`

	// Percent is the completion percentage of Current within [Start, Target].
	Percent float64 `json:"percent" yaml:"percent"`

	// Estimable indicates whether any progress has been made. When false,
	// Total is zero and ETA equals StartTime.
	Estimable bool `json:"estimable" yaml:"estimable"`

	// StartTime is the UTC time the ProgressTimer was created.
	StartTime time.Time `json:"startTime" yaml:"startTime"`

	// Total is the projected duration of the entire run.
	Total time.Duration `json:"total" yaml:"total"`

	// ETA is the projected UTC completion time.
	ETA time.Time `json:"eta" yaml:"eta"`

	// At is the UTC time this snapshot was taken.
	At time.Time `json:"at" yaml:"at"`
}

// ProgressTimer estimates the completion time of a long-running operation
// by linear extrapolation from the progress made so far and the wall-clock
// time spent so far.
//
// UpdateCount may be called concurrently with the read methods.
type ProgressTimer struct {
	name      string
	start     int64
	target    int64
	initial   *int64
	now       NowFunc
	startTime time.Time
	current   atomic.Int64
}

var _ Updater = (*ProgressTimer)(nil)

// ProgressOption is a configurable option for tailoring a ProgressTimer.
type ProgressOption interface {
	apply(*ProgressTimer)
}

type progressOptionFunc func(*ProgressTimer)

func (f progressOptionFunc) apply(pt *ProgressTimer) { f(pt) }

// WithStart sets the count that is considered 0% complete. The default is 0.
func WithStart(start int64) ProgressOption {
	return progressOptionFunc(func(pt *ProgressTimer) {
		pt.start = start
	})
}

// WithInitial sets the initial count, for operations that have already
// begun. If unset, the initial count is the start count.
func WithInitial(initial int64) ProgressOption {
	return progressOptionFunc(func(pt *ProgressTimer) {
		pt.initial = &initial
	})
}

// WithProgressNow sets the strategy for obtaining the current time.
// A nil NowFunc restores the default, time.Now.
func WithProgressNow(now NowFunc) ProgressOption {
	return progressOptionFunc(func(pt *ProgressTimer) {
		if now == nil {
			now = time.Now
		}

		pt.now = now
	})
}

// NewProgressTimer creates a ProgressTimer that considers target to be 100%
// complete. The start time of the run is captured here.
//
// A target equal to the start count is not rejected, but every computation
// that needs a percentage will then return a *RangeError.
func NewProgressTimer(name string, target int64, opts ...ProgressOption) *ProgressTimer {
	pt := &ProgressTimer{
		name:   name,
		target: target,
		now:    time.Now,
	}

	for _, o := range opts {
		o.apply(pt)
	}

	if pt.initial != nil {
		pt.current.Store(*pt.initial)
	} else {
		pt.current.Store(pt.start)
	}

	pt.startTime = utcNow(pt.now)
	return pt
}

// Name returns the label of this ProgressTimer.
func (pt *ProgressTimer) Name() string { return pt.name }

// Start returns the count considered 0% complete.
func (pt *ProgressTimer) Start() int64 { return pt.start }

// Target returns the count considered 100% complete.
func (pt *ProgressTimer) Target() int64 { return pt.target }

// Current returns the most recently reported count.
func (pt *ProgressTimer) Current() int64 { return pt.current.Load() }

// StartTime returns the UTC time this ProgressTimer was created.
func (pt *ProgressTimer) StartTime() time.Time { return pt.startTime }

// UpdateCount implements Updater.
func (pt *ProgressTimer) UpdateCount(count int64) {
	pt.current.Store(count)
}

// Estimable reports whether any progress has been made, i.e. whether
// TotalDuration and ETA are meaningful.
func (pt *ProgressTimer) Estimable() bool {
	return pt.current.Load() != pt.start
}

func (pt *ProgressTimer) percent(current int64) (float64, error) {
	if pt.target == pt.start {
		return 0, &RangeError{
			Name:   pt.name,
			Start:  pt.start,
			Target: pt.target,
		}
	}

	return 100 * float64(current-pt.start) / float64(pt.target-pt.start), nil
}

// total projects the run duration for a given count and time.
func (pt *ProgressTimer) total(current int64, now time.Time) (time.Duration, error) {
	if current == pt.start {
		return 0, nil
	}

	p, err := pt.percent(current)
	if err != nil {
		return 0, err
	}

	elapsed := now.Sub(pt.startTime)
	ns := float64(elapsed) * 100 / p
	if ns >= math.MaxInt64 || ns < math.MinInt64 {
		return 0, fmt.Errorf("%w: [%s] percent=%g elapsed=%s", ErrEstimateOverflow, pt.name, p, elapsed)
	}

	return time.Duration(ns), nil
}

// eta converts a projected total into a completion time. total is always
// a valid time.Duration here, since total rejects anything out of range.
func (pt *ProgressTimer) eta(total time.Duration) time.Time {
	if total == 0 {
		return pt.startTime
	}

	return pt.startTime.Add(total)
}

// Percent returns how far the current count is between start and target,
// as a percentage. If target equals start, a *RangeError is returned.
func (pt *ProgressTimer) Percent() (float64, error) {
	return pt.percent(pt.current.Load())
}

// TotalDuration projects how long the entire run will take. If no progress has
// been made yet, this method returns zero. A projection too large for a
// time.Duration returns an error wrapping ErrEstimateOverflow.
func (pt *ProgressTimer) TotalDuration() (time.Duration, error) {
	return pt.total(pt.current.Load(), utcNow(pt.now))
}

// ETA returns the projected UTC completion time. If no progress has been made
// yet, there is no meaningful estimate and the start time is returned. Use
// Estimable to tell that case apart.
func (pt *ProgressTimer) ETA() (time.Time, error) {
	total, err := pt.TotalDuration()
	if err != nil {
		return time.Time{}, err
	}

	return pt.eta(total), nil
}

// State returns a consistent snapshot of this ProgressTimer, computed from
// a single read of the count and the clock.
func (pt *ProgressTimer) State() (ProgressState, error) {
	var (
		current = pt.current.Load()
		now     = utcNow(pt.now)
	)

	p, err := pt.percent(current)
	if err != nil {
		return ProgressState{}, err
	}

	total, err := pt.total(current, now)
	if err != nil {
		return ProgressState{}, err
	}

	return ProgressState{
		Name:      pt.name,
		Start:     pt.start,
		Target:    pt.target,
		Current:   current,
		Percent:   p,
		Estimable: current != pt.start,
		StartTime: pt.startTime,
		Total:     total,
		ETA:       pt.eta(total),
		At:        now,
	}, nil
}
