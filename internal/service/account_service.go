// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

type accountService struct {
	adapter   adapter.ServerAdapter
	sessions  SessionManager
	validator validators.Validator
	logger    *logger.Logger
	inFlight  *inFlight
}

func NewAccountService(serverAdapter adapter.ServerAdapter, sessions SessionManager, validator validators.Validator, log *logger.Logger) AccountService {
	return &accountService{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validator,
		logger:    log,
		inFlight:  newInFlight(),
	}
}

// VerifyEmail exchanges an emailed token. When the server answers with a
// credential the session becomes authenticated; an already verified
// address without a credential is reported and changes nothing.
func (a *accountService) VerifyEmail(ctx context.Context, token string) (models.VerifyEmailResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.VerifyEmailResponse{}, ErrEmptyVerificationToken
	}

	release, err := a.inFlight.acquire("verify-email")
	if err != nil {
		return models.VerifyEmailResponse{}, err
	}
	defer release()

	resp, err := a.adapter.VerifyEmail(ctx, token)
	if err != nil {
		return models.VerifyEmailResponse{}, fmt.Errorf("verify email: %w", err)
	}
	if resp.Token == "" {
		return resp, nil
	}

	cred := models.Credential{Token: resp.Token}
	user, err := a.adapter.CurrentUser(adapter.WithCredential(ctx, cred))
	if err != nil {
		return resp, fmt.Errorf("fetch profile after verification: %w", err)
	}
	if err = a.sessions.Install(ctx, cred, user); err != nil {
		return resp, err
	}

	a.logger.Info().Str("func", "accountService.VerifyEmail").Str("username", user.Username).Msg("email verified, signed in")
	return resp, nil
}

func (a *accountService) SetupTOTP(ctx context.Context) (models.TOTPSetupResponse, error) {
	user, err := a.currentUser()
	if err != nil {
		return models.TOTPSetupResponse{}, err
	}
	if user.TOTPEnabled {
		return models.TOTPSetupResponse{}, ErrTOTPAlreadyEnabled
	}

	release, err := a.inFlight.acquire("totp")
	if err != nil {
		return models.TOTPSetupResponse{}, err
	}
	defer release()

	out, err := a.adapter.SetupTOTP(ctx)
	if err != nil {
		return models.TOTPSetupResponse{}, fmt.Errorf("totp setup: %w", err)
	}
	return out, nil
}

func (a *accountService) EnableTOTP(ctx context.Context, code string) error {
	return a.changeTOTP(ctx, code, "enable", a.adapter.VerifyTOTP)
}

func (a *accountService) DisableTOTP(ctx context.Context, code string) error {
	return a.changeTOTP(ctx, code, "disable", a.adapter.DisableTOTP)
}

// changeTOTP sends code to call and then reloads the profile, since the
// totpEnabled flag lives on the server.
func (a *accountService) changeTOTP(ctx context.Context, code, op string, call func(context.Context, string) error) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if err := a.validator.Validate(ctx, models.TOTPCodeRequest{Code: code}); err != nil {
		return err
	}

	release, err := a.inFlight.acquire("totp")
	if err != nil {
		return err
	}
	defer release()

	if err = call(ctx, code); err != nil {
		return fmt.Errorf("totp %s: %w", op, err)
	}
	a.logger.Info().Str("func", "accountService.changeTOTP").Str("op", op).Msg("two-factor setting changed")

	return a.sessions.Refresh(ctx)
}

func (a *accountService) currentUser() (models.User, error) {
	s := a.sessions.Current()
	if !s.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}
	return *s.User, nil
}
