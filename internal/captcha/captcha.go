// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package captcha mints the single-use anti-abuse tokens the API requires on
// login. A token is scoped to one action and is fetched immediately before
// the request that spends it; tokens are never cached.
package captcha

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/utils"
)

//go:generate mockgen -source=captcha.go -destination=../mock/captcha_mock.go -package=mock

// ActionLogin is the action name bound to login tokens.
const ActionLogin = "login"

var (
	// ErrNoMinter is returned by New when neither a mint URL nor a static
	// token is configured.
	ErrNoMinter = errors.New("no captcha token source configured")

	// ErrEmptyToken is returned when the minting endpoint answers without a
	// token.
	ErrEmptyToken = errors.New("captcha endpoint returned an empty token")
)

// TokenMinter issues a fresh token for action on every call.
type TokenMinter interface {
	Mint(ctx context.Context, action string) (string, error)
}

// New picks a minter from cfg. A static token takes precedence over the
// mint URL.
func New(cfg config.ClientCaptcha, timeout time.Duration, log *logger.Logger) (TokenMinter, error) {
	switch {
	case cfg.StaticToken != "":
		log.Warn().Msg("captcha: using a static token; only development APIs accept it")
		return NewStaticMinter(cfg.StaticToken), nil
	case cfg.MintURL != "":
		return NewHTTPMinter(cfg.MintURL, cfg.SiteKey, utils.NewHTTPClient("", timeout)), nil
	default:
		return nil, ErrNoMinter
	}
}

type staticMinter struct {
	token string
}

// NewStaticMinter returns a minter that answers every action with token.
func NewStaticMinter(token string) TokenMinter {
	return &staticMinter{token: token}
}

func (s *staticMinter) Mint(context.Context, string) (string, error) {
	return s.token, nil
}

type mintRequest struct {
	SiteKey string `json:"siteKey"`
	Action  string `json:"action"`
}

type mintResponse struct {
	Token string `json:"token"`
}

type httpMinter struct {
	client  *utils.HTTPClient
	url     string
	siteKey string
}

// NewHTTPMinter returns a minter that POSTs {siteKey, action} to url and
// expects {"token": "..."} back.
func NewHTTPMinter(url, siteKey string, client *utils.HTTPClient) TokenMinter {
	return &httpMinter{client: client, url: url, siteKey: siteKey}
}

func (h *httpMinter) Mint(ctx context.Context, action string) (string, error) {
	var out mintResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(mintRequest{SiteKey: h.siteKey, Action: action}).
		SetResult(&out).
		Post(h.url)
	if err != nil {
		return "", fmt.Errorf("mint captcha token: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("mint captcha token: http %d", resp.StatusCode())
	}

	token := strings.TrimSpace(out.Token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
