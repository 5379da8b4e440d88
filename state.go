// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

// TimerState describes where a Timer is in its due cycle as of a given instant.
type TimerState uint8

const (
	// StateWaiting indicates a Timer whose next trigger has not yet passed.
	StateWaiting TimerState = iota

	// StateDueForced indicates a Timer that will fire on the next Due check
	// because Trigger was called. This takes precedence over StateDueNatural.
	StateDueForced

	// StateDueNatural indicates a Timer whose next trigger has passed but
	// which has not yet been consumed by Due.
	StateDueNatural
)

// String returns a human-readable state name.
func (s TimerState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateDueForced:
		return "due-forced"
	case StateDueNatural:
		return "due"
	default:
		return "unknown"
	}
}

// MarshalText produces the string value of this TimerState.
func (s TimerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
