// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the portal client. Each screen
// is a Bubble Tea model behind a router that consults the route guard on
// every navigation and every session change.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	tracker   *routeTracker
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Sessions == nil {
		return nil, fmt.Errorf("tui: services are not initialised")
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
		tracker:   &routeTracker{},
	}, nil
}

// Location reports the screen currently shown. Safe for concurrent use.
func (t *TUI) Location() models.Route {
	return t.tracker.get()
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.buildInfo, t.tracker, models.RouteHome)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Sessions.Subscribe(func(s models.Session) {
		p.Send(sessionChangedMsg{session: s})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
