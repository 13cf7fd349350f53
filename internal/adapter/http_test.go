// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/metrics"
	"github.com/MKhiriev/go-portal-client/internal/mock"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

func newTestAdapter(t *testing.T, serverURL string, creds *mock.MockCredentialStore) *HTTPServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, creds, metrics.New(), logger.Nop())
	require.NoError(t, err)
	return a
}

func anonymousStore(ctrl *gomock.Controller) *mock.MockCredentialStore {
	creds := mock.NewMockCredentialStore(ctrl)
	creds.EXPECT().Get(gomock.Any()).Return(models.Credential{}, false, nil).AnyTimes()
	return creds
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Middleware ──────────────────────────────────────────────────────────────

func TestBearer_ReadPerRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	gomock.InOrder(
		creds.EXPECT().Get(gomock.Any()).Return(models.Credential{Token: "first"}, true, nil),
		creds.EXPECT().Get(gomock.Any()).Return(models.Credential{Token: "second"}, true, nil),
		creds.EXPECT().Get(gomock.Any()).Return(models.Credential{}, false, nil),
	)

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, creds)
	ctx := context.Background()
	require.NoError(t, a.VerifyTOTP(ctx, "123456"))
	require.NoError(t, a.VerifyTOTP(ctx, "123456"))
	require.NoError(t, a.VerifyTOTP(ctx, "123456"))

	assert.Equal(t, []string{"Bearer first", "Bearer second", ""}, seen)
}

func TestBearer_StoreErrorAbortsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	creds.EXPECT().Get(gomock.Any()).Return(models.Credential{}, false, assert.AnError)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, creds).SubmitApplication(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, calls.Load())
}

func TestRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)

	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, anonymousStore(ctrl))
	require.NoError(t, a.UnbanUser(context.Background(), 1))
	require.NoError(t, a.UnbanUser(utils.WithRequestID(context.Background(), "fixed-id"), 1))

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, "fixed-id", ids[1])
}

func TestCredentialRejection_ClearsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	creds.EXPECT().Get(gomock.Any()).Return(models.Credential{Token: "stale"}, true, nil)
	creds.EXPECT().Clear(gomock.Any()).Return(nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.APIErrorBody{Message: "token expired"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, creds)
	a.SetLocation(func() models.Route { return models.RouteProfile })

	var notified atomic.Int32
	a.OnCredentialRejected(func(context.Context) { notified.Add(1) })

	_, err := a.CurrentUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, int32(1), notified.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.CredentialInvalidationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.APIRequestsTotal.WithLabelValues("4xx")))
}

func TestCredentialRejection_ClearFailureStillNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	creds.EXPECT().Get(gomock.Any()).Return(models.Credential{Token: "stale"}, true, nil)
	creds.EXPECT().Clear(gomock.Any()).Return(assert.AnError)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, creds)
	notified := false
	a.OnCredentialRejected(func(context.Context) { notified = true })

	err := a.DisableTOTP(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, notified)
}

func TestCredentialRejection_SkippedOnLoginScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := anonymousStore(ctrl)
	// no Clear expected

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.APIErrorBody{Message: "Invalid username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, creds)
	a.SetLocation(func() models.Route { return models.RouteLogin })
	a.OnCredentialRejected(func(context.Context) { t.Error("listener must not run on the login screen") })

	outcome, err := a.Login(context.Background(), models.LoginAttempt{Username: "u", Password: "p", RecaptchaToken: "r"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, outcome.Kind)
	assert.Equal(t, "Invalid username or password", outcome.Reason)
}

func TestCredentialRejection_SkippedForPinnedCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	// neither Get nor Clear: the pinned credential is used instead of the store

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, creds)
	ctx := WithCredential(context.Background(), models.Credential{Token: "fresh"})

	_, err := a.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Bearer fresh", auth)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       any
		wantKind   models.LoginOutcomeKind
		wantToken  string
		wantReason string
	}{
		{
			name:      "token issued",
			status:    http.StatusOK,
			body:      models.LoginResponse{Token: "tok", Username: "steve", EmailVerified: true},
			wantKind:  models.OutcomeSuccess,
			wantToken: "tok",
		},
		{
			name:     "totp required in success body",
			status:   http.StatusOK,
			body:     models.LoginResponse{TOTPRequired: true, Username: "steve"},
			wantKind: models.OutcomeTOTPRequired,
		},
		{
			name:     "totp required in error body",
			status:   http.StatusUnauthorized,
			body:     models.APIErrorBody{Message: "TOTP code required", TOTPRequired: true},
			wantKind: models.OutcomeTOTPRequired,
		},
		{
			name:     "totp required in 403 error body",
			status:   http.StatusForbidden,
			body:     models.APIErrorBody{TOTPRequired: true},
			wantKind: models.OutcomeTOTPRequired,
		},
		{
			name:       "rejected with message",
			status:     http.StatusBadRequest,
			body:       models.APIErrorBody{Message: "Invalid TOTP code"},
			wantKind:   models.OutcomeRejected,
			wantReason: "Invalid TOTP code",
		},
		{
			name:       "rejected with error field",
			status:     http.StatusTooManyRequests,
			body:       models.APIErrorBody{Error: "slow down"},
			wantKind:   models.OutcomeRejected,
			wantReason: "slow down",
		},
		{
			name:     "rejected without message",
			status:   http.StatusInternalServerError,
			body:     map[string]any{},
			wantKind: models.OutcomeRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var got models.LoginRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/login", r.URL.Path)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, anonymousStore(ctrl))
			a.SetLocation(func() models.Route { return models.RouteLogin })

			outcome, err := a.Login(context.Background(), models.LoginAttempt{
				Username:       "steve",
				Password:       "hunter2",
				TOTPCode:       "123456",
				RecaptchaToken: "captcha",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantToken, outcome.Credential.Token)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, models.LoginRequest{
				Username:       "steve",
				Password:       "hunter2",
				TOTPCode:       "123456",
				RecaptchaToken: "captcha",
			}, got)
		})
	}
}

func TestLogin_MalformedSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Username: "steve"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, anonymousStore(ctrl)).Login(context.Background(), models.LoginAttempt{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogin_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, anonymousStore(ctrl)).Login(context.Background(), models.LoginAttempt{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Other endpoints ─────────────────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	creds.EXPECT().Get(gomock.Any()).Return(models.Credential{Token: "tok"}, true, nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"username":"steve","role":"admin","emailVerified":true,"totpEnabled":true}`))
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL, creds).CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "steve", user.Username)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.TOTPEnabled)
}

func TestEndpoints_PathsAndBodies(t *testing.T) {
	tests := []struct {
		name     string
		call     func(a *HTTPServerAdapter) error
		wantPath string
		wantBody string
	}{
		{"verify totp", func(a *HTTPServerAdapter) error { return a.VerifyTOTP(context.Background(), "123456") }, "/totp/verify", `{"code":"123456"}`},
		{"disable totp", func(a *HTTPServerAdapter) error { return a.DisableTOTP(context.Background(), "654321") }, "/totp/disable", `{"code":"654321"}`},
		{"reset season", func(a *HTTPServerAdapter) error { return a.ResetSeason(context.Background(), "111111") }, "/admin/season/reset", `{"totpCode":"111111"}`},
		{"ban", func(a *HTTPServerAdapter) error { return a.BanUser(context.Background(), 42, "griefing") }, "/admin/users/42/ban", `{"reason":"griefing"}`},
		{"unban", func(a *HTTPServerAdapter) error { return a.UnbanUser(context.Background(), 42) }, "/admin/users/42/unban", ``},
		{"apply", func(a *HTTPServerAdapter) error { return a.SubmitApplication(context.Background(), "let me in") }, "/applications", `{"text":"let me in"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var path, body string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				path = r.URL.Path
				buf := new(json.RawMessage)
				if r.ContentLength > 0 {
					assert.NoError(t, json.NewDecoder(r.Body).Decode(buf))
					body = string(*buf)
				}
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			require.NoError(t, tt.call(newTestAdapter(t, srv.URL, anonymousStore(ctrl))))
			assert.Equal(t, tt.wantPath, path)
			if tt.wantBody == "" {
				assert.Empty(t, body)
			} else {
				assert.JSONEq(t, tt.wantBody, body)
			}
		})
	}
}

func TestVerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyEmailRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mail-token", req.Token)
		writeJSON(t, w, http.StatusOK, models.VerifyEmailResponse{Status: "verified", Token: "bearer"})
	}))
	defer srv.Close()

	out, err := newTestAdapter(t, srv.URL, anonymousStore(ctrl)).VerifyEmail(context.Background(), "mail-token")
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.Token)
	assert.Equal(t, "verified", out.Status)
}

func TestSetupTOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TOTPSetupResponse{Secret: "JBSWY3DPEHPK3PXP", QRCodeDataURI: "data:image/png;base64,AAAA"})
	}))
	defer srv.Close()

	out, err := newTestAdapter(t, srv.URL, anonymousStore(ctrl)).SetupTOTP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", out.Secret)
}

func TestEndpoints_ForbiddenAndConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	status := http.StatusForbidden
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, status, models.APIErrorBody{Message: "nope"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, anonymousStore(ctrl))

	err := a.ResetSeason(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.EqualError(t, err, "http 403: nope")

	status = http.StatusConflict
	assert.ErrorIs(t, a.BanUser(context.Background(), 1, "x"), ErrConflict)
}

func TestNewHTTPServerAdapter_BadAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: " "}, anonymousStore(ctrl), nil, logger.Nop())
	assert.Error(t, err)
}
