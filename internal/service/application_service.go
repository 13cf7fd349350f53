// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

type applicationService struct {
	adapter   adapter.ServerAdapter
	sessions  SessionManager
	validator validators.Validator
	inFlight  *inFlight
}

func NewApplicationService(serverAdapter adapter.ServerAdapter, sessions SessionManager, validator validators.Validator) ApplicationService {
	return &applicationService{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validator,
		inFlight:  newInFlight(),
	}
}

func (a *applicationService) Submit(ctx context.Context, text string) error {
	session := a.sessions.Current()
	if !session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !session.User.CanApply() {
		return ErrApplicationNotAllowed
	}
	if err := a.validator.Validate(ctx, models.ApplicationRequest{Text: text}); err != nil {
		return err
	}

	release, err := a.inFlight.acquire("application")
	if err != nil {
		return err
	}
	defer release()

	if err = a.adapter.SubmitApplication(ctx, text); err != nil {
		return fmt.Errorf("submit application: %w", err)
	}
	return nil
}
