// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the portal REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. The shipped implementation ([NewHTTPServerAdapter]) is a resty
// client with three named middleware stages:
//
//   - bearer: attaches the stored credential to every request, read fresh
//     from the [store.CredentialStore] each time;
//   - request id: stamps X-Request-ID;
//   - credential rejection: on HTTP 401 outside the login screen, clears the
//     credential store and notifies registered listeners. It never redirects.
//
// Non-2xx responses become [*APIError], which matches the sentinel values in
// errors.go through [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portal-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the portal API.
type ServerAdapter interface {
	// Login submits one login attempt and collapses every response shape
	// into a [models.LoginOutcome]. Only transport failures and malformed
	// success bodies are returned as errors.
	Login(ctx context.Context, attempt models.LoginAttempt) (models.LoginOutcome, error)

	// CurrentUser fetches the full profile of the bearer of the current
	// credential (see [WithCredential] to pin one).
	CurrentUser(ctx context.Context) (models.User, error)

	// VerifyEmail exchanges an email verification token. A successful
	// exchange may carry a bearer token.
	VerifyEmail(ctx context.Context, token string) (models.VerifyEmailResponse, error)

	SetupTOTP(ctx context.Context) (models.TOTPSetupResponse, error)
	VerifyTOTP(ctx context.Context, code string) error
	DisableTOTP(ctx context.Context, code string) error

	// ResetSeason fires the season reset with the TOTP code as
	// re-authentication.
	ResetSeason(ctx context.Context, totpCode string) error

	BanUser(ctx context.Context, userID int64, reason string) error
	UnbanUser(ctx context.Context, userID int64) error

	SubmitApplication(ctx context.Context, text string) error
}

// LocationFunc reports the screen the user is currently on.
type LocationFunc func() models.Route

// InvalidationListener is told that the stored credential was rejected and
// has been cleared.
type InvalidationListener func(ctx context.Context)
