// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/chronon"
)

// failingWriter is an http.ResponseWriter whose body writes always fail.
type failingWriter struct {
	*httptest.ResponseRecorder
	err error
}

func (fw failingWriter) Write([]byte) (int, error) {
	return 0, fw.err
}

type ProgressHandlerTestSuite struct {
	suite.Suite

	clock *chronon.FakeClock
}

func (suite *ProgressHandlerTestSuite) SetupTest() {
	suite.clock = chronon.NewFakeClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
}

func (suite *ProgressHandlerTestSuite) serve(h http.Handler) *httptest.ResponseRecorder {
	response := httptest.NewRecorder()
	h.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/progress", nil))
	return response
}

func (suite *ProgressHandlerTestSuite) assertCommonHeaders(response *httptest.ResponseRecorder) {
	suite.Equal("no-cache", response.Header().Get("Cache-Control"))
	suite.Equal(strconv.Itoa(response.Body.Len()), response.Header().Get("Content-Length"))
	suite.Equal(suite.clock.Now().UTC().Format(http.TimeFormat), response.Header().Get("Last-Modified"))
}

func (suite *ProgressHandlerTestSuite) TestServeHTTP() {
	pt := NewProgressTimer("upload", 400, WithProgressNow(suite.clock.Now))
	h := NewProgressHandler(pt)

	pt.UpdateCount(100)
	suite.clock.Add(15 * time.Second)

	response := suite.serve(h)
	suite.Equal(http.StatusOK, response.Code)
	suite.Equal("application/json", response.Header().Get("Content-Type"))
	suite.assertCommonHeaders(response)

	var actual ProgressState
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &actual))
	suite.Equal("upload", actual.Name)
	suite.Equal(int64(100), actual.Current)
	suite.InDelta(25.0, actual.Percent, 1e-9)
	suite.True(actual.Estimable)
	suite.Equal(time.Minute, actual.Total)
	suite.True(pt.StartTime().Add(time.Minute).Equal(actual.ETA))
}

func (suite *ProgressHandlerTestSuite) TestServeHTTPEmptyRange() {
	pt := NewProgressTimer("empty", 0, WithProgressNow(suite.clock.Now))
	h := NewProgressHandler(pt)

	response := suite.serve(h)
	suite.Equal(http.StatusInternalServerError, response.Code)
	suite.Equal("text/plain; charset=utf-8", response.Header().Get("Content-Type"))
	suite.Contains(response.Body.String(), ErrEmptyRange.Error())
	suite.assertCommonHeaders(response)
}

func (suite *ProgressHandlerTestSuite) TestErrorer() {
	var (
		expectedErr = errors.New("expected")
		actualErr   error
	)

	pt := NewProgressTimer("upload", 10, WithProgressNow(suite.clock.Now))
	h := NewProgressHandler(pt, WithErrorer(func(err error) {
		actualErr = err
	}))

	h.ServeHTTP(
		failingWriter{ResponseRecorder: httptest.NewRecorder(), err: expectedErr},
		httptest.NewRequest(http.MethodGet, "/progress", nil),
	)

	suite.ErrorIs(actualErr, expectedErr)
}

func TestProgressHandler(t *testing.T) {
	suite.Run(t, new(ProgressHandlerTestSuite))
}
