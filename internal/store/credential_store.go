// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-portal-client/models"
)

// DisplayHints are denormalized profile fields kept next to the token so a
// screen can render something before the profile loads. They are never
// used for authorization.
type DisplayHints struct {
	Username      string
	EmailVerified bool
}

type credentialStore struct {
	local LocalStorage
}

// NewCredentialStore returns a [CredentialStore] over local.
func NewCredentialStore(local LocalStorage) CredentialStore {
	return &credentialStore{local: local}
}

func (c *credentialStore) Get(ctx context.Context) (models.Credential, bool, error) {
	token, ok, err := c.local.Get(ctx, KeyToken)
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("read credential: %w", err)
	}
	if !ok || token == "" {
		return models.Credential{}, false, nil
	}
	return models.Credential{Token: token}, true, nil
}

// Set replaces the held credential.
func (c *credentialStore) Set(ctx context.Context, cred models.Credential) error {
	if cred.IsZero() {
		return ErrEmptyCredential
	}
	if err := c.local.Set(ctx, KeyToken, cred.Token); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Clear drops the credential together with its display hints. Clearing an
// empty store succeeds.
func (c *credentialStore) Clear(ctx context.Context) error {
	if err := c.local.Remove(ctx, KeyToken, KeyUsername, KeyEmailVerified); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (c *credentialStore) SetHints(ctx context.Context, hints DisplayHints) error {
	if err := c.local.Set(ctx, KeyUsername, hints.Username); err != nil {
		return fmt.Errorf("write username hint: %w", err)
	}
	if err := c.local.Set(ctx, KeyEmailVerified, strconv.FormatBool(hints.EmailVerified)); err != nil {
		return fmt.Errorf("write email verified hint: %w", err)
	}
	return nil
}

// Hints returns whatever hints are stored. Missing or unparsable values
// come back as zero values.
func (c *credentialStore) Hints(ctx context.Context) (DisplayHints, error) {
	var hints DisplayHints

	username, _, err := c.local.Get(ctx, KeyUsername)
	if err != nil {
		return DisplayHints{}, fmt.Errorf("read username hint: %w", err)
	}
	hints.Username = username

	verified, ok, err := c.local.Get(ctx, KeyEmailVerified)
	if err != nil {
		return DisplayHints{}, fmt.Errorf("read email verified hint: %w", err)
	}
	if ok {
		hints.EmailVerified, _ = strconv.ParseBool(verified)
	}

	return hints, nil
}
