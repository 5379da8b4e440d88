// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"context"
	"math"
	"time"
)

const (
	// MinPeriod is the smallest interval a Timer will use. Shorter periods
	// passed to NewTimer are raised to this value.
	MinPeriod time.Duration = time.Second

	// minWait is the shortest sleep Wait will take between checks.
	minWait time.Duration = time.Nanosecond
)

// Timer is a recurring, wall-clock interval timer. A control loop either
// polls Due or blocks in Wait to learn when the interval has elapsed.
//
// A Timer has no internal locking. It is meant to be driven by a single
// goroutine; callers that share a Timer must synchronize access themselves.
//
// When a caller polls less often than the period, the skip policy decides
// what happens to the missed intervals:
//
// (1) With skipping enabled (the default), all missed intervals collapse into
// a single firing and the next trigger moves to the first interval boundary
// after the current time.
//
// (2) With skipping disabled, each firing advances the next trigger by exactly
// one period, so Due keeps returning true until the Timer has caught up.
type Timer struct {
	period time.Duration
	offset time.Duration
	skip   bool

	// now is the strategy used to get the current time.
	// by default, time.Now is used.
	now NowFunc

	// newTimer is a factory for creating the timer channel and stop function
	// used by Wait. if unset, DefaultTimerFunc is used.
	newTimer TimerFunc

	listeners TimerListeners

	nextTrigger time.Time
	force       bool
}

// TimerOption is a configurable option for tailoring a Timer.
type TimerOption interface {
	apply(*Timer)
}

type timerOptionFunc func(*Timer)

func (f timerOptionFunc) apply(t *Timer) { f(t) }

// WithOffset sets the delay before the first firing. If unset or zero,
// the first firing happens one period after construction.
func WithOffset(d time.Duration) TimerOption {
	return timerOptionFunc(func(t *Timer) {
		t.offset = d
	})
}

// WithSkip sets the skip policy for missed intervals. The default is true.
func WithSkip(skip bool) TimerOption {
	return timerOptionFunc(func(t *Timer) {
		t.skip = skip
	})
}

// WithTimerNow sets the strategy for obtaining the current time.
// A nil NowFunc restores the default, time.Now.
func WithTimerNow(now NowFunc) TimerOption {
	return timerOptionFunc(func(t *Timer) {
		if now == nil {
			now = time.Now
		}

		t.now = now
	})
}

// WithTimerFunc sets the strategy Wait uses to sleep.
// A nil TimerFunc restores the default, DefaultTimerFunc.
func WithTimerFunc(f TimerFunc) TimerOption {
	return timerOptionFunc(func(t *Timer) {
		if f == nil {
			f = DefaultTimerFunc
		}

		t.newTimer = f
	})
}

// WithTimerListeners adds listeners that receive a TimerEvent whenever
// the Timer fires, restarts, or is triggered.
func WithTimerListeners(ls ...TimerListener) TimerOption {
	return timerOptionFunc(func(t *Timer) {
		t.listeners = append(t.listeners, ls...)
	})
}

// NewTimer constructs a Timer with the given period. Construction never fails:
// a period shorter than MinPeriod is silently raised to MinPeriod.
//
// The first firing happens one period from now, or after the offset supplied
// via WithOffset if that offset is nonzero.
func NewTimer(period time.Duration, opts ...TimerOption) *Timer {
	t := &Timer{
		period:   max(period, MinPeriod),
		skip:     true,
		now:      time.Now,
		newTimer: DefaultTimerFunc,
	}

	for _, o := range opts {
		o.apply(t)
	}

	first := t.period
	if t.offset != 0 {
		first = t.offset
	}

	t.nextTrigger = utcNow(t.now).Add(first)
	return t
}

// Period returns the interval of this Timer.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Skip returns the skip policy of this Timer.
func (t *Timer) Skip() bool {
	return t.skip
}

// NextTrigger returns the UTC time of the next natural firing. A forced
// trigger does not change this value.
func (t *Timer) NextTrigger() time.Time {
	return t.nextTrigger
}

// State returns the TimerState as of the current time. This method does
// not consume a pending firing.
func (t *Timer) State() TimerState {
	switch {
	case t.force:
		return StateDueForced

	case utcNow(t.now).After(t.nextTrigger):
		return StateDueNatural

	default:
		return StateWaiting
	}
}

// dispatch sends an event to any listeners.
func (t *Timer) dispatch(et EventType, forced bool, missed int, at time.Time) {
	if len(t.listeners) == 0 {
		return
	}

	t.listeners.OnTimerEvent(TimerEvent{
		Type:        et,
		Period:      t.period,
		Forced:      forced,
		Missed:      missed,
		NextTrigger: t.nextTrigger,
		At:          at,
	})
}

// advance moves the next trigger forward after a firing and clears any forced
// trigger. It returns the number of intervals that were dropped by the skip policy.
//
// When skipping, a next trigger that is still in the future is left alone, so a
// forced firing does not shift the Timer's cadence.
func (t *Timer) advance(now time.Time) (missed int) {
	if t.skip {
		steps := 0
		for !t.nextTrigger.After(now) {
			t.nextTrigger = t.nextTrigger.Add(t.period)
			steps++
		}

		missed = max(steps-1, 0)
	} else {
		t.nextTrigger = t.nextTrigger.Add(t.period)
	}

	t.force = false
	return
}

// Due reports whether the Timer should fire. It returns true if the next trigger
// has passed or if Trigger has been called, and in that case it also advances the
// next trigger according to the skip policy. If Due returns false, the Timer's
// state is unchanged.
//
// Due is meant to be polled repeatedly from a control loop.
func (t *Timer) Due() bool {
	now := utcNow(t.now)
	if !now.After(t.nextTrigger) && !t.force {
		return false
	}

	forced := t.force
	missed := t.advance(now)
	t.dispatch(EventFired, forced, missed, now)
	return true
}

// Elapsed returns the time since the start of the current interval. This can
// exceed the period if the Timer is overdue and has not yet been polled.
func (t *Timer) Elapsed() time.Duration {
	return utcNow(t.now).Sub(t.nextTrigger.Add(-t.period))
}

// ElapsedPercent returns Elapsed as a percentage of the period, rounded to the
// nearest whole number with ties to even. This can exceed 100 if the Timer is overdue.
func (t *Timer) ElapsedPercent() float64 {
	return math.RoundToEven(100 * float64(t.Elapsed()) / float64(t.period))
}

// Remaining returns the time left until the next trigger. This is never negative.
func (t *Timer) Remaining() time.Duration {
	return max(t.nextTrigger.Sub(utcNow(t.now)), 0)
}

// Restart abandons the current countdown and starts a new interval at the
// current time. Any overdue intervals and any forced trigger are dropped.
// This method always returns true.
func (t *Timer) Restart() bool {
	now := utcNow(t.now)
	forced := t.force
	t.nextTrigger = now.Add(t.period)
	t.force = false
	t.dispatch(EventRestarted, forced, 0, now)
	return true
}

// Trigger forces the next Due check to fire, after which the Timer advances
// as it normally would. The next trigger time is not changed by this method.
// This method always returns true.
func (t *Timer) Trigger() bool {
	t.force = true
	t.dispatch(EventTriggered, true, 0, utcNow(t.now))
	return true
}

// Wait blocks the calling goroutine until Due fires, sleeping for the remaining
// time between checks. It returns nil once Due has fired, or the context's error
// if ctx is canceled first.
//
// The remaining time is recomputed from the wall clock after each sleep, so clock
// adjustments such as a daylight saving change can make the wait longer or shorter
// than expected.
func (t *Timer) Wait(ctx context.Context) error {
	for !t.Due() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// now may equal the next trigger exactly, in which case Due fires
		// once the clock moves on
		d := max(t.Remaining(), minWait)
		timeCh, stop := t.newTimer(d)
		select {
		case <-ctx.Done():
			stop()
			return ctx.Err()

		case <-timeCh:
		}
	}

	return nil
}
