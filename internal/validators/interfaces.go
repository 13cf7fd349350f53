// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the client-side checks that run before any
// request is sent: shape validation of user input ([Validator]) and the
// destructive-action confirmation gate ([ConfirmationGate]).
//
// Nothing here contacts the API. A rejected value never reaches the
// transport.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
