// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type sessionRefreshJob struct {
	sessions SessionManager
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionRefreshJob creates a job that calls sessions.Refresh every
// interval while a user is signed in. A non-positive interval means five
// minutes. The job is idle until Start is called.
func NewSessionRefreshJob(sessions SessionManager, interval time.Duration, log *logger.Logger) SessionRefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &sessionRefreshJob{sessions: sessions, interval: interval, logger: log}
}

// Start stops any previous run and launches the ticker goroutine. It exits
// when ctx is cancelled or Stop is called.
func (j *sessionRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *sessionRefreshJob) tick(ctx context.Context) {
	if !j.sessions.Current().IsAuthenticated() {
		return
	}
	err := j.sessions.Refresh(ctx)
	if err == nil || errors.Is(err, ErrNotAuthenticated) || errors.Is(err, context.Canceled) {
		return
	}
	j.logger.Warn().Err(err).Str("func", "sessionRefreshJob.tick").Msg("session refresh failed")
}

// Stop cancels the goroutine and waits for it to exit. Safe to call when
// the job is not running.
func (j *sessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
