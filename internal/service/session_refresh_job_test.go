// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/models"
)

// spySessions counts Refresh calls and reports a fixed session.
type spySessions struct {
	SessionManager
	session models.Session
	calls   atomic.Int64
	err     error
}

func (s *spySessions) Current() models.Session { return s.session }

func (s *spySessions) Refresh(context.Context) error {
	s.calls.Add(1)
	return s.err
}

// ── NewSessionRefreshJob ─────────────────────────────────────────────────────

func TestNewSessionRefreshJob_DefaultInterval(t *testing.T) {
	job := NewSessionRefreshJob(&spySessions{}, 0, logger.Nop()).(*sessionRefreshJob)
	require.NotNil(t, job)
	assert.Equal(t, defaultRefreshInterval, job.interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSessionRefreshJob_RefreshesWhileAuthenticated(t *testing.T) {
	spy := &spySessions{session: models.AuthenticatedSession(alex)}
	job := NewSessionRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSessionRefreshJob_SkipsAnonymous(t *testing.T) {
	spy := &spySessions{session: models.AnonymousSession()}
	job := NewSessionRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestSessionRefreshJob_ErrorsDoNotStopTheJob(t *testing.T) {
	spy := &spySessions{session: models.AuthenticatedSession(alex), err: assert.AnError}
	job := NewSessionRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestSessionRefreshJob_StopHalts(t *testing.T) {
	spy := &spySessions{session: models.AuthenticatedSession(alex)}
	job := NewSessionRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestSessionRefreshJob_ContextCancel(t *testing.T) {
	spy := &spySessions{session: models.AuthenticatedSession(alex)}
	job := NewSessionRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()
	job.Stop()

	assert.NotPanics(t, job.Stop)
}

func TestSessionRefreshJob_RestartReplacesPrevious(t *testing.T) {
	spy := &spySessions{session: models.AuthenticatedSession(alex)}
	job := NewSessionRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	job.Stop()

	assert.NotPanics(t, job.Stop)
}
