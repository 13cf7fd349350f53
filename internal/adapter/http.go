// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/metrics"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

// HTTPServerAdapter is the REST implementation of [ServerAdapter].
type HTTPServerAdapter struct {
	client  *utils.HTTPClient
	creds   store.CredentialStore
	metrics *metrics.ClientMetrics
	logger  *logger.Logger

	mu        sync.RWMutex
	locate    LocationFunc
	listeners []InvalidationListener
}

var _ ServerAdapter = (*HTTPServerAdapter)(nil)

// NewHTTPServerAdapter builds the adapter over the API at cfg.HTTPAddress.
// creds is consulted on every request. m may be nil.
func NewHTTPServerAdapter(cfg config.ClientAdapter, creds store.CredentialStore, m *metrics.ClientMetrics, log *logger.Logger) (*HTTPServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &HTTPServerAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		creds:   creds,
		metrics: m,
		logger:  log,
	}

	h.client.
		OnBeforeRequest(bearerMiddleware(creds)).
		OnBeforeRequest(requestIDMiddleware(utils.NewUUIDGenerator())).
		OnAfterResponse(h.metricsMiddleware).
		OnAfterResponse(h.credentialRejectionMiddleware)

	log.Debug().Str("base_url", baseURL).Msg("http server adapter created")
	return h, nil
}

// SetLocation installs the function used to tell whether the user is on the
// login screen. Until one is set the location is [models.RouteHome].
func (h *HTTPServerAdapter) SetLocation(fn LocationFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.locate = fn
}

// OnCredentialRejected registers l to run after a rejected credential has
// been cleared.
func (h *HTTPServerAdapter) OnCredentialRejected(l InvalidationListener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

func (h *HTTPServerAdapter) location() models.Route {
	h.mu.RLock()
	fn := h.locate
	h.mu.RUnlock()
	if fn == nil {
		return models.RouteHome
	}
	return fn()
}

func (h *HTTPServerAdapter) invalidationListeners() []InvalidationListener {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]InvalidationListener, len(h.listeners))
	copy(out, h.listeners)
	return out
}

// Login implements [ServerAdapter]. The totpRequired flag is honoured both
// in a 2xx body and in an error body of any status; upstream uses both.
func (h *HTTPServerAdapter) Login(ctx context.Context, attempt models.LoginAttempt) (models.LoginOutcome, error) {
	var body models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{
			Username:       attempt.Username,
			Password:       attempt.Password,
			TOTPCode:       attempt.TOTPCode,
			RecaptchaToken: attempt.RecaptchaToken,
		}).
		SetResult(&body).
		Post("/login")
	if err != nil {
		return models.LoginOutcome{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return models.LoginOutcome{}, err
		}
		if apiErr.TOTPRequired {
			return models.LoginNeedsTOTP(), nil
		}
		return models.LoginRejected(apiErr.Message), nil
	}

	switch {
	case body.TOTPRequired:
		return models.LoginNeedsTOTP(), nil
	case body.Token != "":
		return models.LoginSucceeded(models.Credential{Token: body.Token}), nil
	default:
		return models.LoginOutcome{}, fmt.Errorf("%w: login response carries neither token nor totpRequired", ErrMalformedResponse)
	}
}

// CurrentUser implements [ServerAdapter].
func (h *HTTPServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return models.User{}, err
	}
	if user.ID == 0 && user.Username == "" {
		return models.User{}, fmt.Errorf("%w: empty profile", ErrMalformedResponse)
	}
	return user, nil
}

// VerifyEmail implements [ServerAdapter].
func (h *HTTPServerAdapter) VerifyEmail(ctx context.Context, token string) (models.VerifyEmailResponse, error) {
	var out models.VerifyEmailResponse
	err := h.do(ctx, http.MethodPost, "/verify-email", models.VerifyEmailRequest{Token: token}, &out)
	return out, err
}

// SetupTOTP implements [ServerAdapter].
func (h *HTTPServerAdapter) SetupTOTP(ctx context.Context) (models.TOTPSetupResponse, error) {
	var out models.TOTPSetupResponse
	if err := h.do(ctx, http.MethodPost, "/totp/setup", nil, &out); err != nil {
		return models.TOTPSetupResponse{}, err
	}
	if out.Secret == "" {
		return models.TOTPSetupResponse{}, fmt.Errorf("%w: empty totp secret", ErrMalformedResponse)
	}
	return out, nil
}

// VerifyTOTP implements [ServerAdapter].
func (h *HTTPServerAdapter) VerifyTOTP(ctx context.Context, code string) error {
	return h.do(ctx, http.MethodPost, "/totp/verify", models.TOTPCodeRequest{Code: code}, nil)
}

// DisableTOTP implements [ServerAdapter].
func (h *HTTPServerAdapter) DisableTOTP(ctx context.Context, code string) error {
	return h.do(ctx, http.MethodPost, "/totp/disable", models.TOTPCodeRequest{Code: code}, nil)
}

// ResetSeason implements [ServerAdapter].
func (h *HTTPServerAdapter) ResetSeason(ctx context.Context, totpCode string) error {
	return h.do(ctx, http.MethodPost, "/admin/season/reset", models.ResetSeasonRequest{TOTPCode: totpCode}, nil)
}

// BanUser implements [ServerAdapter].
func (h *HTTPServerAdapter) BanUser(ctx context.Context, userID int64, reason string) error {
	return h.do(ctx, http.MethodPost, "/admin/users/"+strconv.FormatInt(userID, 10)+"/ban", models.BanRequest{Reason: reason}, nil)
}

// UnbanUser implements [ServerAdapter].
func (h *HTTPServerAdapter) UnbanUser(ctx context.Context, userID int64) error {
	return h.do(ctx, http.MethodPost, "/admin/users/"+strconv.FormatInt(userID, 10)+"/unban", nil, nil)
}

// SubmitApplication implements [ServerAdapter].
func (h *HTTPServerAdapter) SubmitApplication(ctx context.Context, text string) error {
	return h.do(ctx, http.MethodPost, "/applications", models.ApplicationRequest{Text: text}, nil)
}

// do sends one JSON request. body and result may be nil.
func (h *HTTPServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "HTTPServerAdapter.do").
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	return mapHTTPError(resp)
}
