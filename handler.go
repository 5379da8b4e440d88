// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Errorer is a callback that receives errors the ProgressHandler encounters while
// trying to write responses. By default, such errors are dropped.
type Errorer func(error)

// HandlerOption is a configurable option for customizing a ProgressHandler.
type HandlerOption interface {
	apply(*ProgressHandler)
}

type handlerOptionFunc func(*ProgressHandler)

func (f handlerOptionFunc) apply(h *ProgressHandler) { f(h) }

// WithErrorer configures an error callback for the ProgressHandler. There is
// no default for this option. If unspecified, errors are dropped.
func WithErrorer(errorer Errorer) HandlerOption {
	return handlerOptionFunc(func(h *ProgressHandler) {
		h.errorer = errorer
	})
}

// content holds a rendered response.
type content struct {
	responseCode int
	contentType  string
	lastModified time.Time
	body         []byte
}

// writeTo writes this content to the given response.
func (c content) writeTo(response http.ResponseWriter) (err error) {
	rh := response.Header()
	rh.Set("Content-Type", c.contentType)
	rh.Set("Content-Length", strconv.Itoa(len(c.body)))
	rh.Set("Last-Modified", c.lastModified.Format(http.TimeFormat))

	response.WriteHeader(c.responseCode)
	_, err = response.Write(c.body)
	return
}

// ProgressHandler is an HTTP handler that exposes the current ProgressState
// of a ProgressTimer as JSON. The state is computed on each request.
type ProgressHandler struct {
	pt      *ProgressTimer
	errorer Errorer
}

// NewProgressHandler constructs a ProgressHandler for the given ProgressTimer.
func NewProgressHandler(pt *ProgressTimer, opts ...HandlerOption) *ProgressHandler {
	h := &ProgressHandler{
		pt: pt,
	}

	for _, o := range opts {
		o.apply(h)
	}

	return h
}

// render produces the content for the current state. Any failure is rendered
// as a plaintext 500 response.
func (h *ProgressHandler) render() content {
	state, err := h.pt.State()
	var data []byte
	if err == nil {
		data, err = json.Marshal(state)
	}

	if err != nil {
		return content{
			responseCode: http.StatusInternalServerError,
			contentType:  "text/plain; charset=utf-8",
			lastModified: utcNow(h.pt.now),
			body:         []byte(err.Error()),
		}
	}

	return content{
		responseCode: http.StatusOK,
		contentType:  "application/json",
		lastModified: state.At,
		body:         data,
	}
}

// ServeHTTP writes the current progress state.
func (h *ProgressHandler) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	// force clients to always revalidate and fetch the current value
	response.Header().Set("Cache-Control", "no-cache")

	err := h.render().writeTo(response)
	if err != nil && h.errorer != nil {
		h.errorer(err)
	}
}
