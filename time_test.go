// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"time"

	"github.com/xmidt-org/chronon"
)

// fakeTimer creates a fake, controllable TimerFunc from the given FakeClock.
// If created is not nil, the requested duration of each new timer is sent
// to it, which lets a test know when a goroutine has started sleeping.
func fakeTimer(fc *chronon.FakeClock, created chan<- time.Duration) TimerFunc {
	return func(d time.Duration) (<-chan time.Time, func() bool) {
		ft := fc.NewTimer(d)
		if created != nil {
			created <- d
		}

		return ft.C(), ft.Stop
	}
}
