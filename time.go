// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import "time"

// NowFunc is a closure used to produce the current time. Every time read
// made by a Timer or a ProgressTimer goes through one of these.
//
// By default, time.Now is used.
type NowFunc func() time.Time

// TimerFunc is a factory closure for a timer channel and the associated Stop function.
// Timer.Wait uses this strategy to sleep until the next trigger.
type TimerFunc func(time.Duration) (<-chan time.Time, func() bool)

// DefaultTimerFunc is the default TimerFunc. It simply delegates
// to time.NewTimer.
func DefaultTimerFunc(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// utcNow reads the given NowFunc and normalizes the result to UTC.
func utcNow(now NowFunc) time.Time {
	return now().UTC()
}
