// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import "time"

// EventType identifies what happened to a Timer.
type EventType uint8

const (
	// EventFired indicates that Due returned true and the Timer advanced
	// its next trigger.
	EventFired EventType = iota

	// EventRestarted indicates that Restart resynchronized the Timer to the current time.
	EventRestarted

	// EventTriggered indicates that Trigger forced the next Due check to fire.
	EventTriggered
)

// String returns a human-readable event type name.
func (et EventType) String() string {
	switch et {
	case EventFired:
		return "fired"
	case EventRestarted:
		return "restarted"
	case EventTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// TimerEvent describes a change in the state of a Timer.
type TimerEvent struct {
	// Type is the kind of change.
	Type EventType

	// Period is the Timer's interval.
	Period time.Duration

	// Forced is true if this event involved a forced trigger. For EventFired,
	// this means the firing was caused by Trigger rather than elapsed time.
	Forced bool

	// Missed is the count of intervals that were dropped by an EventFired
	// under the skip policy, not counting the interval that fired. It is
	// always zero for other event types and for Timers that do not skip.
	Missed int

	// NextTrigger is the Timer's next trigger after the change. This timestamp
	// will always be in UTC.
	NextTrigger time.Time

	// At is the time of the change, in UTC.
	At time.Time
}

// TimerListener is a sink for TimerEvents.
type TimerListener interface {
	// OnTimerEvent receives a TimerEvent. This method is invoked
	// synchronously from the Timer method that caused the event, so
	// it must not block and must not call back into the Timer.
	OnTimerEvent(TimerEvent)
}

// TimerListenerFunc is a closure type that implements TimerListener.
type TimerListenerFunc func(TimerEvent)

// OnTimerEvent invokes this closure.
func (f TimerListenerFunc) OnTimerEvent(e TimerEvent) { f(e) }

// TimerListeners is an aggregate TimerListener.
type TimerListeners []TimerListener

// OnTimerEvent dispatches the given event to each listener
// in this aggregate.
func (tls TimerListeners) OnTimerEvent(e TimerEvent) {
	for _, l := range tls {
		l.OnTimerEvent(e)
	}
}
