// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a value empty.
const (
	DefaultHTTPAddress     = "http://localhost:8080"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultStorageDSN      = "portal-client.db"
	DefaultRefreshInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Origin scopes local storage entries.
	Origin string `validate:"required"`
	// LogLevel is the minimum log level.
	LogLevel string `validate:"omitempty,oneof=trace debug info warn warning error"`
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base address.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientStorage holds local storage settings.
type ClientStorage struct {
	// DSN is a redis:// URL or a SQLite file path.
	DSN string `validate:"required"`
}

// ClientCaptcha holds anti-abuse token settings. At least one of MintURL and
// StaticToken must be set; StaticToken wins when both are.
type ClientCaptcha struct {
	MintURL     string `validate:"omitempty,url"`
	SiteKey     string
	StaticToken string `validate:"required_without=MintURL"`
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the session profile is revalidated.
	RefreshInterval time.Duration `validate:"gt=0"`
}

// ClientMetrics holds metrics export settings.
type ClientMetrics struct {
	TextfilePath string
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Captcha ClientCaptcha
	Workers ClientWorkers
	Metrics ClientMetrics
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Origin:   cfg.App.Origin,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DSN},
		Captcha: ClientCaptcha{
			MintURL:     cfg.Captcha.MintURL,
			SiteKey:     cfg.Captcha.SiteKey,
			StaticToken: cfg.Captcha.StaticToken,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Metrics: ClientMetrics{TextfilePath: cfg.Metrics.TextfilePath},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = DefaultStorageDSN
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if clientCfg.App.Origin == "" {
		clientCfg.App.Origin = clientCfg.Adapter.HTTPAddress
	}

	return clientCfg
}
