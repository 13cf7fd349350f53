// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/captcha"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/metrics"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/validators"
)

type ClientServices struct {
	Sessions     SessionManager
	Login        LoginFlow
	Account      AccountService
	Admin        AdminService
	Applications ApplicationService
	RefreshJob   SessionRefreshJob
}

func NewClientServices(
	creds store.CredentialStore,
	serverAdapter adapter.ServerAdapter,
	minter captcha.TokenMinter,
	m *metrics.ClientMetrics,
	refreshInterval time.Duration,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewInputValidator()
	sessions := NewSessionManager(creds, serverAdapter, log)

	return &ClientServices{
		Sessions:     sessions,
		Login:        NewLoginFlow(serverAdapter, sessions, minter, validator, m, log),
		Account:      NewAccountService(serverAdapter, sessions, validator, log),
		Admin:        NewAdminService(serverAdapter, sessions, validator, log),
		Applications: NewApplicationService(serverAdapter, sessions, validator),
		RefreshJob:   NewSessionRefreshJob(sessions, refreshInterval, log),
	}
}
