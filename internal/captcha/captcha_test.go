// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/utils"
)

func TestNew_PicksMinter(t *testing.T) {

	m, err := New(config.ClientCaptcha{StaticToken: "dev", MintURL: "https://captcha.example.org"}, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &staticMinter{}, m)

	m, err = New(config.ClientCaptcha{MintURL: "https://captcha.example.org"}, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpMinter{}, m)

	_, err = New(config.ClientCaptcha{}, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrNoMinter)
}

func TestStaticMinter(t *testing.T) {
	tok, err := NewStaticMinter("dev").Mint(context.Background(), ActionLogin)
	require.NoError(t, err)
	assert.Equal(t, "dev", tok)
}

func TestHTTPMinter_FreshTokenPerCall(t *testing.T) {
	n := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req mintRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "site", req.SiteKey)
		assert.Equal(t, ActionLogin, req.Action)
		n++
		_, _ = utils.WriteJSON(w, mintResponse{Token: fmt.Sprintf("token-%d", n)}, http.StatusOK)
	}))
	defer srv.Close()

	m := NewHTTPMinter(srv.URL, "site", utils.NewHTTPClient("", time.Second))

	first, err := m.Mint(context.Background(), ActionLogin)
	require.NoError(t, err)
	second, err := m.Mint(context.Background(), ActionLogin)
	require.NoError(t, err)

	assert.Equal(t, "token-1", first)
	assert.Equal(t, "token-2", second)
}

func TestHTTPMinter_Failures(t *testing.T) {
	status := http.StatusServiceUnavailable
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, mintResponse{}, status)
	}))
	defer srv.Close()

	m := NewHTTPMinter(srv.URL, "site", utils.NewHTTPClient("", time.Second))

	_, err := m.Mint(context.Background(), ActionLogin)
	assert.ErrorContains(t, err, "http 503")

	status = http.StatusOK
	_, err = m.Mint(context.Background(), ActionLogin)
	assert.ErrorIs(t, err, ErrEmptyToken)
}
