// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

// SessionManager owns the in-memory session. It is the only writer of the
// credential store besides the transport's rejection stage, and the only
// source of "who is signed in" for the UI.
type SessionManager interface {
	// Boot resolves the initial Booting state from the credential store.
	// A stored credential the API no longer accepts is discarded. Boot runs
	// once; later calls return nil without doing anything.
	Boot(ctx context.Context) error

	// Current returns the latest snapshot.
	Current() models.Session

	// Install stores cred and installs user as one transition. Observers
	// never see a held credential without a user.
	Install(ctx context.Context, cred models.Credential, user models.User) error

	// Refresh re-fetches the profile and replaces the user wholesale.
	// A 401 collapses the session to anonymous. Returns ErrNotAuthenticated
	// when there is nothing to refresh.
	Refresh(ctx context.Context) error

	// Logout clears the credential store, then the user. Logging out an
	// anonymous session does nothing.
	Logout(ctx context.Context) error

	// Invalidate collapses the session after the transport has already
	// cleared a rejected credential.
	Invalidate(ctx context.Context)

	// Subscribe registers fn to receive every new snapshot in transition
	// order. The returned func unregisters it. fn runs synchronously after
	// the transition and must not call back into the manager.
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

// LoginFlow drives the one- or two-step login.
type LoginFlow interface {
	// Submit starts a login with username and password, discarding any
	// pending second-factor step.
	Submit(ctx context.Context, username, password string) (LoginResult, error)

	// SubmitCode completes a login that is awaiting a second factor.
	SubmitCode(ctx context.Context, code string) (LoginResult, error)

	// Reset returns the flow to idle and forgets the pending credentials.
	Reset()

	State() LoginState
}

// AccountService holds self-service account operations.
type AccountService interface {
	VerifyEmail(ctx context.Context, token string) (models.VerifyEmailResponse, error)
	SetupTOTP(ctx context.Context) (models.TOTPSetupResponse, error)
	EnableTOTP(ctx context.Context, code string) error
	DisableTOTP(ctx context.Context, code string) error
}

// AdminService holds moderator and admin actions.
type AdminService interface {
	// Gate returns the confirmation gate guarding ResetSeason, for the UI
	// to compute whether its confirm control is enabled.
	Gate() validators.ConfirmationGate

	// ResetSeason re-checks the gate immediately before firing.
	ResetSeason(ctx context.Context, challenge models.ConfirmationChallenge) error

	BanUser(ctx context.Context, userID int64, reason string) error
	UnbanUser(ctx context.Context, userID int64) error
}

// ApplicationService submits membership applications.
type ApplicationService interface {
	Submit(ctx context.Context, text string) error
}

// SessionRefreshJob revalidates the session in the background.
type SessionRefreshJob interface {
	Start(ctx context.Context)
	Stop()
}
