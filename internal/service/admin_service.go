// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

type adminService struct {
	adapter   adapter.ServerAdapter
	sessions  SessionManager
	validator validators.Validator
	gate      validators.ConfirmationGate
	logger    *logger.Logger
	inFlight  *inFlight
}

func NewAdminService(serverAdapter adapter.ServerAdapter, sessions SessionManager, validator validators.Validator, log *logger.Logger) AdminService {
	return &adminService{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validator,
		gate:      validators.NewSeasonResetGate(),
		logger:    log,
		inFlight:  newInFlight(),
	}
}

func (s *adminService) Gate() validators.ConfirmationGate {
	return s.gate
}

// ResetSeason fires only when the actor is an admin with TOTP enabled and
// the challenge passes the gate at the moment of the call.
func (s *adminService) ResetSeason(ctx context.Context, challenge models.ConfirmationChallenge) error {
	session := s.sessions.Current()
	if !session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !session.IsAdmin() {
		return ErrInsufficientRole
	}
	if err := s.gate.Check(session.User, challenge); err != nil {
		return err
	}

	release, err := s.inFlight.acquire("season-reset")
	if err != nil {
		return err
	}
	defer release()

	if err = s.adapter.ResetSeason(ctx, challenge.TOTPCode); err != nil {
		return fmt.Errorf("reset season: %w", err)
	}

	s.logger.Warn().
		Str("func", "adminService.ResetSeason").
		Str("actor", session.User.Username).
		Msg("season reset")
	return nil
}

func (s *adminService) BanUser(ctx context.Context, userID int64, reason string) error {
	actor, err := s.moderator()
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, models.BanRequest{Reason: reason}); err != nil {
		return err
	}

	release, err := s.inFlight.acquire(moderationKey(userID))
	if err != nil {
		return err
	}
	defer release()

	if err = s.adapter.BanUser(ctx, userID, reason); err != nil {
		return fmt.Errorf("ban user %d: %w", userID, err)
	}
	s.logger.Info().Str("func", "adminService.BanUser").Str("actor", actor.Username).Int64("user_id", userID).Msg("user banned")
	return nil
}

func (s *adminService) UnbanUser(ctx context.Context, userID int64) error {
	actor, err := s.moderator()
	if err != nil {
		return err
	}

	release, err := s.inFlight.acquire(moderationKey(userID))
	if err != nil {
		return err
	}
	defer release()

	if err = s.adapter.UnbanUser(ctx, userID); err != nil {
		return fmt.Errorf("unban user %d: %w", userID, err)
	}
	s.logger.Info().Str("func", "adminService.UnbanUser").Str("actor", actor.Username).Int64("user_id", userID).Msg("user unbanned")
	return nil
}

func (s *adminService) moderator() (*models.User, error) {
	session := s.sessions.Current()
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if !session.User.CanModerate() {
		return nil, ErrInsufficientRole
	}
	return session.User, nil
}

func moderationKey(userID int64) string {
	return "moderation:" + strconv.FormatInt(userID, 10)
}
