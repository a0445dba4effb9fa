// Package http provides helpers for writing JSON responses
//
// The wire format is deliberately flat: success responses are the payload
// itself, error responses are {"message": "..."} with a mapped status code.
// The request id travels in the X-Request-ID header, not the body.
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "spamwatch/internal/platform/errors"
	pnet "spamwatch/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes the payload with a 200
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	setRequestIDHeader(w, r)
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps a project error to a status and writes {"message": ...}
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	setRequestIDHeader(w, r)
	JSON(w, perr.HTTPStatus(err), perr.WireFrom(err))
}

func setRequestIDHeader(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	if reqID := pnet.RequestID(r.Context()); reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	setRequestIDHeader(w, r)

	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// If Body is an error, derive status from error *before* writing
	if err, ok := resp.Body.(error); ok && err != nil {
		JSON(w, perr.HTTPStatus(err), perr.WireFrom(err))
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and message body
func Error(err error) Response { return Response{Body: err} }
