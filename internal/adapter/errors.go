// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels matched by [*APIError] through errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrTransport wraps failures where no HTTP response was received.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse is returned when a 2xx body lacks what the
	// endpoint promises.
	ErrMalformedResponse = errors.New("malformed response")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// APIError is a non-2xx API response.
type APIError struct {
	Status int
	// Message is the server-provided message, possibly empty.
	Message string
	// TOTPRequired mirrors the totpRequired flag of the error body.
	TOTPRequired bool
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, msg)
}

// Unwrap exposes the sentinel for e.Status, if any, so that
// errors.Is(err, ErrUnauthorized) holds for a 401.
func (e *APIError) Unwrap() error {
	return statusSentinels[e.Status]
}
