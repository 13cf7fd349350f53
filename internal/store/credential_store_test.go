// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/models"
)

type brokenStorage struct{ err error }

func (b brokenStorage) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenStorage) Set(context.Context, string, string) error        { return b.err }
func (b brokenStorage) Remove(context.Context, ...string) error          { return b.err }
func (b brokenStorage) Close() error                                      { return nil }

func newTestCredentialStore(t *testing.T) (CredentialStore, LocalStorage) {
	t.Helper()
	local := NewSQLiteLocalStorage(newTestDB(t), "https://portal.example.org")
	return NewCredentialStore(local), local
}

func TestCredentialStore_EmptyIsNotAnError(t *testing.T) {
	cs, _ := newTestCredentialStore(t)

	cred, ok, err := cs.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, cred.IsZero())
}

func TestCredentialStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCredentialStore(t)

	require.NoError(t, cs.Set(ctx, models.Credential{Token: "opaque.token.value"}))

	cred, ok, err := cs.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "opaque.token.value", cred.Token)

	require.NoError(t, cs.Clear(ctx))
	_, ok, err = cs.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing twice is fine
	require.NoError(t, cs.Clear(ctx))
}

func TestCredentialStore_SetRejectsEmpty(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	assert.ErrorIs(t, cs.Set(context.Background(), models.Credential{}), ErrEmptyCredential)
}

func TestCredentialStore_ClearDropsHints(t *testing.T) {
	ctx := context.Background()
	cs, local := newTestCredentialStore(t)

	require.NoError(t, cs.Set(ctx, models.Credential{Token: "t"}))
	require.NoError(t, cs.SetHints(ctx, DisplayHints{Username: "steve", EmailVerified: true}))
	require.NoError(t, local.Set(ctx, "lastRoute", "profile"))

	hints, err := cs.Hints(ctx)
	require.NoError(t, err)
	assert.Equal(t, DisplayHints{Username: "steve", EmailVerified: true}, hints)

	require.NoError(t, cs.Clear(ctx))

	hints, err = cs.Hints(ctx)
	require.NoError(t, err)
	assert.Equal(t, DisplayHints{}, hints)

	v, ok, err := local.Get(ctx, "lastRoute")
	require.NoError(t, err)
	assert.True(t, ok, "unrelated keys are not part of the credential")
	assert.Equal(t, "profile", v)
}

func TestCredentialStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	cs := NewCredentialStore(brokenStorage{err: boom})

	_, ok, err := cs.Get(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, cs.Set(ctx, models.Credential{Token: "t"}), boom)
	assert.ErrorIs(t, cs.Clear(ctx), boom)
	assert.ErrorIs(t, cs.SetHints(ctx, DisplayHints{}), boom)
	_, err = cs.Hints(ctx)
	assert.ErrorIs(t, err, boom)
}
