// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import "github.com/sirupsen/logrus"

// LogListener is a TimerListener that writes each TimerEvent to a logrus logger.
// Firings that dropped intervals are logged at Info, everything else at Debug.
type LogListener struct {
	logger logrus.FieldLogger
}

var _ TimerListener = (*LogListener)(nil)

// NewLogListener creates a LogListener for the given logger. A nil logger
// results in logrus.StandardLogger().
func NewLogListener(logger logrus.FieldLogger) *LogListener {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogListener{logger: logger}
}

// OnTimerEvent logs the event.
func (ll *LogListener) OnTimerEvent(e TimerEvent) {
	entry := ll.logger.WithFields(logrus.Fields{
		"event":       e.Type.String(),
		"period":      e.Period.String(),
		"forced":      e.Forced,
		"missed":      e.Missed,
		"nextTrigger": e.NextTrigger,
	})

	if e.Missed > 0 {
		entry.Info("timer skipped missed intervals")
		return
	}

	entry.Debug("timer " + e.Type.String())
}
