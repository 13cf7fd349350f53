// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "https://api.example.org",
		"-request-timeout", "20s",
		"-d", "client.db",
		"-origin", "https://portal.example.org",
		"-log-level", "warn",
		"-captcha-url", "https://captcha.example.org/mint",
		"-captcha-site-key", "key",
		"-captcha-token", "tok",
		"-refresh-interval", "1m",
		"-metrics-file", "portal.prom",
		"-config", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DSN)
	assert.Equal(t, "https://portal.example.org", cfg.App.Origin)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "https://captcha.example.org/mint", cfg.Captcha.MintURL)
	assert.Equal(t, "key", cfg.Captcha.SiteKey)
	assert.Equal(t, "tok", cfg.Captcha.StaticToken)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "portal.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-request-timeout", "later"})
	require.Error(t, err)
}
