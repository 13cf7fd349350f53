// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "client.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMockSQLiteStorage(t *testing.T) (*sqliteLocalStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	s := NewSQLiteLocalStorage(&DB{DB: conn, logger: logger.Nop()}, "https://portal.example.org").(*sqliteLocalStorage)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, mock
}

func TestSQLiteLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteLocalStorage(newTestDB(t), "https://portal.example.org")

	_, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "missing key is not an error")

	require.NoError(t, s.Set(ctx, KeyToken, "first"))
	require.NoError(t, s.Set(ctx, KeyToken, "second"))

	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	require.NoError(t, s.Remove(ctx, KeyToken, "never-set"))
	_, ok, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteLocalStorage_OriginIsolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := NewSQLiteLocalStorage(db, "https://a.example.org")
	b := NewSQLiteLocalStorage(db, "https://b.example.org")

	require.NoError(t, a.Set(ctx, KeyToken, "token-a"))

	_, ok, err := b.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, KeyToken, "token-b"))
	require.NoError(t, b.Remove(ctx, KeyToken))

	v, ok, err := a.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-a", v)
}

func TestSQLiteLocalStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "client.db")
	cfg := config.ClientStorage{DSN: path}

	s, err := NewLocalStorage(ctx, cfg, "https://portal.example.org", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyToken, "persisted"))
	require.NoError(t, s.Close())

	s, err = NewLocalStorage(ctx, cfg, "https://portal.example.org", logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestSQLiteLocalStorage_GetQueryError(t *testing.T) {
	s, mock := newMockSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM local_storage WHERE").
		WithArgs("https://portal.example.org", KeyToken).
		WillReturnError(errors.New("disk I/O error"))

	_, ok, err := s.Get(context.Background(), KeyToken)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrScanningRow)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteLocalStorage_SetUpserts(t *testing.T) {
	s, mock := newMockSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO local_storage .* ON CONFLICT \\(origin, key\\) DO UPDATE").
		WithArgs("https://portal.example.org", KeyToken, "t", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), KeyToken, "t"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteLocalStorage_SetExecError(t *testing.T) {
	s, mock := newMockSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO local_storage").WillReturnError(errors.New("readonly database"))

	err := s.Set(context.Background(), KeyToken, "t")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteLocalStorage_RemoveNoKeys(t *testing.T) {
	s, mock := newMockSQLiteStorage(t)

	require.NoError(t, s.Remove(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteLocalStorage_RemoveExecError(t *testing.T) {
	s, mock := newMockSQLiteStorage(t)

	mock.ExpectExec("DELETE FROM local_storage WHERE").
		WithArgs("https://portal.example.org", KeyToken, KeyUsername).
		WillReturnError(errors.New("locked"))

	err := s.Remove(context.Background(), KeyToken, KeyUsername)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestNewLocalStorage_RejectsEmptyInputs(t *testing.T) {
	ctx := context.Background()

	_, err := NewLocalStorage(ctx, config.ClientStorage{DSN: "x.db"}, "", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)

	_, err = NewLocalStorage(ctx, config.ClientStorage{}, "https://portal.example.org", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsRedisDSN(t *testing.T) {
	assert.True(t, isRedisDSN("redis://localhost:6379/0"))
	assert.True(t, isRedisDSN("rediss://cache.example.org:6380"))
	assert.False(t, isRedisDSN("/var/lib/portal/client.db"))
	assert.False(t, isRedisDSN("portal-client.db"))
}
