// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/models"
)

type sessionManager struct {
	creds   store.CredentialStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	// notifyMu serializes transitions with their notifications so
	// subscribers see snapshots in transition order.
	notifyMu sync.Mutex

	mu         sync.RWMutex
	session    models.Session
	generation uint64
	booted     bool

	subsMu sync.Mutex
	subs   map[uint64]func(models.Session)
	nextID uint64
}

// NewSessionManager returns a manager in the Booting state.
func NewSessionManager(creds store.CredentialStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) SessionManager {
	return &sessionManager{
		creds:   creds,
		adapter: serverAdapter,
		logger:  log,
		session: models.BootingSession(),
		subs:    make(map[uint64]func(models.Session)),
	}
}

func (m *sessionManager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *sessionManager) Subscribe(fn func(models.Session)) func() {
	m.subsMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subsMu.Lock()
			delete(m.subs, id)
			m.subsMu.Unlock()
		})
	}
}

func (m *sessionManager) Boot(ctx context.Context) error {
	m.mu.Lock()
	if m.booted {
		m.mu.Unlock()
		return nil
	}
	m.booted = true
	gen := m.generation
	m.mu.Unlock()

	log := m.logger.GetChildLogger()
	log.Debug().Str("func", "sessionManager.Boot").Msg("checking stored credential")

	cred, ok, err := m.creds.Get(ctx)
	if err != nil {
		m.resolveBoot(gen, models.AnonymousSession())
		return fmt.Errorf("boot: %w", err)
	}
	if !ok {
		m.resolveBoot(gen, models.AnonymousSession())
		return nil
	}

	user, err := m.adapter.CurrentUser(adapter.WithCredential(ctx, cred))
	if err == nil {
		m.resolveBoot(gen, models.AuthenticatedSession(user))
		return nil
	}

	// Whatever the reason, a credential whose profile cannot be loaded is
	// not kept: the user is never present without a token, and vice versa.
	if clearErr := m.creds.Clear(ctx); clearErr != nil {
		log.Err(clearErr).Str("func", "sessionManager.Boot").Msg("failed to discard stale credential")
	}
	m.resolveBoot(gen, models.AnonymousSession())

	if errors.Is(err, adapter.ErrUnauthorized) {
		log.Info().Str("func", "sessionManager.Boot").Msg("stored credential rejected, signed out")
		return nil
	}
	return fmt.Errorf("boot: fetch profile: %w", err)
}

// resolveBoot leaves Booting unless another transition already did.
func (m *sessionManager) resolveBoot(gen uint64, next models.Session) {
	m.transition(func() bool {
		if m.generation != gen || m.session.State != models.StateBooting {
			return false
		}
		m.session = next
		return true
	})
}

func (m *sessionManager) Install(ctx context.Context, cred models.Credential, user models.User) error {
	var installErr error

	m.transition(func() bool {
		if err := m.creds.Set(ctx, cred); err != nil {
			installErr = fmt.Errorf("install credential: %w", err)
			return false
		}
		hints := store.DisplayHints{Username: user.Username, EmailVerified: user.EmailVerified}
		if err := m.creds.SetHints(ctx, hints); err != nil {
			m.logger.Err(err).Str("func", "sessionManager.Install").Msg("failed to store display hints")
		}
		m.session = models.AuthenticatedSession(user)
		return true
	})

	return installErr
}

func (m *sessionManager) Refresh(ctx context.Context) error {
	m.mu.RLock()
	authenticated := m.session.IsAuthenticated()
	gen := m.generation
	m.mu.RUnlock()

	if !authenticated {
		return ErrNotAuthenticated
	}

	user, err := m.adapter.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			m.collapse(ctx, gen)
		}
		return fmt.Errorf("refresh profile: %w", err)
	}

	m.transition(func() bool {
		if m.generation != gen || !m.session.IsAuthenticated() {
			// signed out or replaced while the request was in flight
			return false
		}
		m.session = models.AuthenticatedSession(user)
		return true
	})
	return nil
}

// collapse drops an authenticated session whose credential was rejected.
func (m *sessionManager) collapse(ctx context.Context, gen uint64) {
	m.transition(func() bool {
		if m.generation != gen || !m.session.IsAuthenticated() {
			return false
		}
		if err := m.creds.Clear(ctx); err != nil {
			m.logger.Err(err).Str("func", "sessionManager.collapse").Msg("failed to clear rejected credential")
		}
		m.session = models.AnonymousSession()
		return true
	})
}

func (m *sessionManager) Logout(ctx context.Context) error {
	var logoutErr error

	m.transition(func() bool {
		if !m.session.IsAuthenticated() {
			return false
		}
		if err := m.creds.Clear(ctx); err != nil {
			logoutErr = fmt.Errorf("logout: %w", err)
			return false
		}
		m.session = models.AnonymousSession()
		return true
	})

	return logoutErr
}

func (m *sessionManager) Invalidate(context.Context) {
	m.transition(func() bool {
		// Boot settles its own outcome from the failed profile fetch.
		if !m.session.IsAuthenticated() {
			return false
		}
		m.session = models.AnonymousSession()
		return true
	})
}

// transition runs apply under the write lock. When apply reports a change
// the generation is bumped and subscribers get the new snapshot.
func (m *sessionManager) transition(apply func() bool) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	prev := m.session.State
	changed := apply()
	if changed {
		m.generation++
	}
	snapshot := m.session
	m.mu.Unlock()

	if !changed {
		return
	}

	ev := m.logger.Info().
		Str("func", "sessionManager.transition").
		Stringer("from", prev).
		Stringer("to", snapshot.State)
	if snapshot.User != nil {
		ev = ev.Str("username", snapshot.User.Username)
	}
	ev.Msg("session changed")

	for _, fn := range m.subscribers() {
		fn(snapshot)
	}
}

func (m *sessionManager) subscribers() []func(models.Session) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	ids := make([]uint64, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]func(models.Session), 0, len(ids))
	for _, id := range ids {
		out = append(out, m.subs[id])
	}
	return out
}
