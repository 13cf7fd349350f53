// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// Keys persisted in LocalStorage.
const (
	KeyToken         = "token"
	KeyUsername      = "username"
	KeyEmailVerified = "emailVerified"
)

// NewLocalStorage opens the backend named by cfg.DSN and scopes it to
// origin. A redis:// or rediss:// URL selects Redis; anything else is a
// SQLite file path, migrated on open.
func NewLocalStorage(ctx context.Context, cfg config.ClientStorage, origin string, log *logger.Logger) (LocalStorage, error) {
	if origin == "" {
		return nil, fmt.Errorf("%w: empty origin", ErrUnsupportedDSN)
	}

	switch {
	case isRedisDSN(cfg.DSN):
		client, err := ConnectRedis(ctx, cfg.DSN)
		if err != nil {
			log.Err(err).Str("func", "NewLocalStorage").Msg("error connecting redis")
			return nil, err
		}
		log.Debug().Str("func", "NewLocalStorage").Str("origin", origin).Msg("using redis local storage")
		return NewRedisLocalStorage(client, origin), nil

	case cfg.DSN != "":
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		log.Debug().Str("func", "NewLocalStorage").Str("origin", origin).Msg("using sqlite local storage")
		return NewSQLiteLocalStorage(db, origin), nil

	default:
		return nil, fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	}
}

func isRedisDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://")
}
