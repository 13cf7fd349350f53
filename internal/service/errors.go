// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrOperationInFlight  = errors.New("operation already in progress")
	ErrNoPendingLogin     = errors.New("no login is awaiting a second factor")
	ErrInsufficientRole   = errors.New("insufficient role for this action")
	ErrTOTPAlreadyEnabled = errors.New("two-factor authentication is already enabled")

	// ErrApplicationNotAllowed is returned when the applicant has not
	// verified both email and Discord, or is banned.
	ErrApplicationNotAllowed = errors.New("verify your email and Discord account before applying")

	ErrEmptyVerificationToken = errors.New("verification token is empty")
)

// DefaultRejectionMessage is shown when the server rejects a login without
// saying why.
const DefaultRejectionMessage = "Invalid username or password"

// RejectedError reports a login refused by the server. Reason is meant for
// display.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "login rejected: " + e.Reason
}

func newRejectedError(reason string) *RejectedError {
	if reason == "" {
		reason = DefaultRejectionMessage
	}
	return &RejectedError{Reason: reason}
}
