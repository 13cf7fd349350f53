// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-portal-client/internal/logger"
)

const localStorageTable = "local_storage"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sqliteLocalStorage keeps every origin's entries in one table keyed by
// (origin, key).
type sqliteLocalStorage struct {
	db     *DB
	origin string
	now    func() time.Time
}

// NewSQLiteLocalStorage returns a [LocalStorage] scoped to origin over an
// already migrated database.
func NewSQLiteLocalStorage(db *DB, origin string) LocalStorage {
	return &sqliteLocalStorage{
		db:     db,
		origin: origin,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteLocalStorage) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.
		Select("value").
		From(localStorageTable).
		Where(sq.And{sq.Eq{"origin": s.origin}, sq.Eq{"key": key}}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).
			Str("func", "sqliteLocalStorage.Get").
			Str("key", key).
			Msg("failed to read local storage entry")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *sqliteLocalStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.
		Insert(localStorageTable).
		Columns("origin", "key", "value", "updated_at").
		Values(s.origin, key, value, s.now()).
		Suffix("ON CONFLICT (origin, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.Set").
			Str("key", key).
			Msg("failed to write local storage entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes keys; missing keys are ignored.
func (s *sqliteLocalStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sqlite.
		Delete(localStorageTable).
		Where(sq.Eq{"origin": s.origin}).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.Remove").
			Strs("keys", keys).
			Msg("failed to remove local storage entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Close() error {
	return s.db.Close()
}
