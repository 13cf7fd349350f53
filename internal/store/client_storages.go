// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// ClientStorages groups the client-side stores that share one origin-scoped
// [LocalStorage].
type ClientStorages struct {
	Local       LocalStorage
	Credentials CredentialStore
}

// NewClientStorages opens the local storage backend named in cfg, scoped to
// origin, and builds the stores on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, origin string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("origin", origin).Msg("creating new storages...")

	local, err := NewLocalStorage(ctx, cfg, origin, logger)
	if err != nil {
		return nil, fmt.Errorf("local storage error: %w", err)
	}

	return &ClientStorages{
		Local:       local,
		Credentials: NewCredentialStore(local),
	}, nil
}

// Close releases the underlying backend.
func (s *ClientStorages) Close() error {
	return s.Local.Close()
}
