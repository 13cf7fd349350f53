// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// Confirmation gate violations. Each is refused before any network call.
var (
	// ErrTOTPNotEnabled means the actor must enable two-factor
	// authentication before the action is available.
	ErrTOTPNotEnabled = errors.New("two-factor authentication must be enabled first")

	// ErrPhraseMismatch means the typed phrase is not exactly the expected one.
	ErrPhraseMismatch = errors.New("confirmation phrase does not match")

	// ErrMalformedCode means the TOTP code is not exactly six digits.
	ErrMalformedCode = errors.New("code must be exactly 6 digits")
)
