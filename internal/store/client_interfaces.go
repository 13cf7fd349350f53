// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-portal-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is a durable key/value substrate scoped to a single origin.
// Entries written under one origin are invisible to every other origin.
// A missing key is reported as ok == false with a nil error.
type LocalStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// CredentialStore holds the bearer credential and its denormalized display
// hints. Get never fails for absence; an empty store yields (zero, false, nil).
type CredentialStore interface {
	Get(ctx context.Context) (models.Credential, bool, error)
	Set(ctx context.Context, cred models.Credential) error
	Clear(ctx context.Context) error
	SetHints(ctx context.Context, hints DisplayHints) error
	Hints(ctx context.Context) (DisplayHints, error)
}
