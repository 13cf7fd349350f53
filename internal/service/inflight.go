// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// inFlight tracks side-effecting actions that are currently running, keyed
// by action so a double submit of the same action is refused.
type inFlight struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{running: make(map[string]struct{})}
}

// acquire marks key as running. The returned release must be called once
// the action finishes.
func (g *inFlight) acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.running[key]; busy {
		return nil, ErrOperationInFlight
	}
	g.running[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.running, key)
		g.mu.Unlock()
	}, nil
}
