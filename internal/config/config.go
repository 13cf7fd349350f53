// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the portal
// client. It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local credential storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Captcha holds the anti-abuse token minting settings.
	Captcha Captcha `envPrefix:"CAPTCHA_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds client metrics export settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Origin scopes the local storage. Two clients pointed at different
	// origins never see each other's credentials. Defaults to the adapter
	// base URL when empty.
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN"`

	// LogLevel is the minimum log level (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings for the outbound REST transport.
type Adapter struct {
	// HTTPAddress is the base URL of the portal API
	// (e.g. "https://api.example.org" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the transport timeout for a single request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local storage settings.
type Storage struct {
	// DSN selects the backend: a redis:// URL or a SQLite file path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Captcha holds settings for anti-abuse token minting.
type Captcha struct {
	// MintURL is the endpoint that issues single-use tokens for an action.
	// Env: CAPTCHA_MINT_URL
	MintURL string `env:"MINT_URL"`

	// SiteKey identifies the site to the minting endpoint.
	// Env: CAPTCHA_SITE_KEY
	SiteKey string `env:"SITE_KEY"`

	// StaticToken, when set, is returned for every action instead of
	// calling MintURL. Intended for development APIs that skip verification.
	// Env: CAPTCHA_STATIC_TOKEN
	StaticToken string `env:"STATIC_TOKEN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the signed-in profile is re-fetched.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Metrics holds client metrics export settings.
type Metrics struct {
	// TextfilePath is where metrics are written on shutdown in the
	// Prometheus text format. Empty disables the export.
	// Env: METRICS_TEXTFILE
	TextfilePath string `env:"TEXTFILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following order (later sources override non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
