// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/chronon"
)

type LogListenerTestSuite struct {
	suite.Suite

	logger *logrus.Logger
	hook   *test.Hook
}

func (suite *LogListenerTestSuite) SetupTest() {
	suite.logger, suite.hook = test.NewNullLogger()
	suite.logger.SetLevel(logrus.DebugLevel)
}

func (suite *LogListenerTestSuite) TestNilLogger() {
	ll := NewLogListener(nil)
	suite.Require().NotNil(ll)
	suite.Same(logrus.StandardLogger(), ll.logger)
}

func (suite *LogListenerTestSuite) TestOnTimerEvent() {
	ll := NewLogListener(suite.logger)

	ll.OnTimerEvent(TimerEvent{Type: EventTriggered, Period: time.Second, Forced: true})
	entry := suite.hook.LastEntry()
	suite.Require().NotNil(entry)
	suite.Equal(logrus.DebugLevel, entry.Level)
	suite.Equal("timer triggered", entry.Message)
	suite.Equal("triggered", entry.Data["event"])
	suite.Equal(true, entry.Data["forced"])
	suite.Equal(0, entry.Data["missed"])
	suite.Equal("1s", entry.Data["period"])

	ll.OnTimerEvent(TimerEvent{Type: EventFired, Period: time.Second, Missed: 3})
	entry = suite.hook.LastEntry()
	suite.Require().NotNil(entry)
	suite.Equal(logrus.InfoLevel, entry.Level)
	suite.Equal(3, entry.Data["missed"])
	suite.Len(suite.hook.AllEntries(), 2)
}

func (suite *LogListenerTestSuite) TestWithTimer() {
	clock := chronon.NewFakeClock(time.Now())
	t := NewTimer(
		time.Minute,
		WithTimerNow(clock.Now),
		WithTimerListeners(NewLogListener(suite.logger)),
	)

	clock.Add(10 * time.Minute)
	suite.True(t.Due())
	t.Restart()

	entries := suite.hook.AllEntries()
	suite.Require().Len(entries, 2)
	suite.Equal(logrus.InfoLevel, entries[0].Level)
	suite.Equal(9, entries[0].Data["missed"])
	suite.Equal("restarted", entries[1].Data["event"])
}

func TestLogListener(t *testing.T) {
	suite.Run(t, new(LogListenerTestSuite))
}
