// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/captcha"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/validators"
)

const (
	msgServerUnavailable = "No network connection or the server is unavailable"
	msgSessionExpired    = "Your session has expired. Please sign in again."
	msgEnableTOTPFirst   = "Enable two-factor authentication on your profile first"
	msgCaptchaFailed     = "Could not obtain an anti-abuse token, try again"
	msgBusy              = "Already in progress, please wait"
)

// humanizeError turns an error from the service layer into a line for the
// user. Server messages are shown as sent.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var rejected *service.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Reason
	}

	switch {
	case errors.Is(err, validators.ErrTOTPNotEnabled):
		return msgEnableTOTPFirst
	case errors.Is(err, validators.ErrPhraseMismatch),
		errors.Is(err, validators.ErrMalformedCode),
		errors.Is(err, service.ErrApplicationNotAllowed),
		errors.Is(err, service.ErrTOTPAlreadyEnabled),
		errors.Is(err, service.ErrInsufficientRole),
		errors.Is(err, service.ErrEmptyVerificationToken):
		return capitalize(rootMessage(err))
	case errors.Is(err, validators.ErrInvalidInput):
		return capitalize(strings.TrimPrefix(rootMessage(err), validators.ErrInvalidInput.Error()+": "))
	case errors.Is(err, service.ErrOperationInFlight):
		return msgBusy
	case errors.Is(err, service.ErrNotAuthenticated), errors.Is(err, adapter.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, captcha.ErrNoMinter), errors.Is(err, captcha.ErrEmptyToken):
		return msgCaptchaFailed
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if errors.Is(err, adapter.ErrTransport) {
		return humanizeServerUnavailableError(err)
	}
	return err.Error()
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}
	return err.Error()
}

// rootMessage strips the "context: " prefixes added by wrapping and keeps
// the innermost message that still carries the full suffix.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		if strings.HasSuffix(err.Error(), next.Error()) && next.Error() != "" {
			err = next
			continue
		}
		return err.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
