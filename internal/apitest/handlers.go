// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgInvalidCode        = "Invalid TOTP code"
	msgCaptchaFailed      = "reCAPTCHA verification failed"
	msgInvalidJSON        = "Invalid JSON was passed"
)

type mintRequest struct {
	SiteKey string `json:"siteKey"`
	Action  string `json:"action"`
}

func (a *API) mintCaptcha(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" {
		utils.WriteError(w, http.StatusBadRequest, "action is required", false)
		return
	}
	_, _ = utils.WriteJSON(w, map[string]string{"token": CaptchaToken}, http.StatusOK)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginCalls++

	if req.RecaptchaToken != CaptchaToken {
		utils.WriteError(w, http.StatusBadRequest, msgCaptchaFailed, false)
		return
	}

	id, ok := a.byName[req.Username]
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials, false)
		return
	}
	acc := a.accounts[id]
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)); err != nil {
		utils.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials, false)
		return
	}

	if acc.user.TOTPEnabled {
		switch {
		case req.TOTPCode == "" && a.TOTPViaError:
			utils.WriteError(w, http.StatusUnauthorized, "TOTP code required", true)
			return
		case req.TOTPCode == "":
			_, _ = utils.WriteJSON(w, models.LoginResponse{TOTPRequired: true, Username: acc.user.Username}, http.StatusOK)
			return
		case req.TOTPCode != acc.totpCode:
			utils.WriteError(w, http.StatusUnauthorized, msgInvalidCode, false)
			return
		}
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, id, tokenTTL, a.signKey)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error(), false)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Token:           token,
		EmailVerified:   acc.user.EmailVerified,
		Username:        acc.user.Username,
		DiscordVerified: acc.user.DiscordVerified,
	}, http.StatusOK)
}

func (a *API) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id, ok := a.verification[req.Token]
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid or expired verification token", false)
		return
	}
	acc := a.accounts[id]
	if acc.user.EmailVerified {
		_, _ = utils.WriteJSON(w, models.VerifyEmailResponse{Status: "ok", AlreadyVerified: true}, http.StatusOK)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, id, tokenTTL, a.signKey)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error(), false)
		return
	}
	acc.user.EmailVerified = true
	_, _ = utils.WriteJSON(w, models.VerifyEmailResponse{Status: "verified", Token: token}, http.StatusOK)
}

// auth resolves the bearer token to an account and stores its ID in the
// request context under [utils.UserIDCtxKey].
func (a *API) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, err.Error(), false)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(tokenString, a.signKey, tokenIssuer)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid token", false)
			return
		}

		a.mu.Lock()
		_, revoked := a.revoked[tokenString]
		_, exists := a.accounts[userID]
		a.mu.Unlock()
		if revoked || !exists {
			utils.WriteError(w, http.StatusUnauthorized, "Token expired", false)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc, ok := a.caller(r)
			if !ok || !slices.Contains(roles, acc.user.Role) {
				utils.WriteError(w, http.StatusForbidden, "Forbidden", false)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// caller must not be called with mu held.
func (a *API) caller(r *http.Request) (*account, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	acc, ok := a.accounts[userID]
	return acc, ok
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	acc, ok := a.caller(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", false)
		return
	}
	a.mu.Lock()
	user := acc.user
	a.mu.Unlock()
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (a *API) setupTOTP(w http.ResponseWriter, r *http.Request) {
	acc, ok := a.caller(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if acc.user.TOTPEnabled {
		utils.WriteError(w, http.StatusConflict, "TOTP is already enabled", false)
		return
	}
	acc.pendingTOTP = true
	_, _ = utils.WriteJSON(w, models.TOTPSetupResponse{
		Secret:        TOTPSecret,
		QRCodeDataURI: "data:image/png;base64,",
	}, http.StatusOK)
}

func (a *API) verifyTOTP(w http.ResponseWriter, r *http.Request) {
	a.changeTOTP(w, r, true)
}

func (a *API) disableTOTP(w http.ResponseWriter, r *http.Request) {
	a.changeTOTP(w, r, false)
}

func (a *API) changeTOTP(w http.ResponseWriter, r *http.Request, enable bool) {
	acc, ok := a.caller(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", false)
		return
	}
	var req models.TOTPCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case enable && !acc.pendingTOTP:
		utils.WriteError(w, http.StatusBadRequest, "Run TOTP setup first", false)
		return
	case !enable && !acc.user.TOTPEnabled:
		utils.WriteError(w, http.StatusBadRequest, "TOTP is not enabled", false)
		return
	case req.Code != acc.totpCode:
		utils.WriteError(w, http.StatusBadRequest, msgInvalidCode, false)
		return
	}

	acc.pendingTOTP = false
	acc.user.TOTPEnabled = enable
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) submitApplication(w http.ResponseWriter, r *http.Request) {
	acc, ok := a.caller(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", false)
		return
	}
	var req models.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		utils.WriteError(w, http.StatusBadRequest, "text is required", false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.applications[acc.user.ID] = append(a.applications[acc.user.ID], req.Text)
	_, _ = utils.WriteJSON(w, map[string]string{"status": "submitted"}, http.StatusCreated)
}

func (a *API) resetSeason(w http.ResponseWriter, r *http.Request) {
	acc, _ := a.caller(r)
	var req models.ResetSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !acc.user.TOTPEnabled || req.TOTPCode != acc.totpCode {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidCode, false)
		return
	}
	a.seasonResets++
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) ban(w http.ResponseWriter, r *http.Request) {
	var req models.BanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reason == "" {
		utils.WriteError(w, http.StatusBadRequest, "reason is required", false)
		return
	}
	a.setBan(w, r, true, req.Reason)
}

func (a *API) unban(w http.ResponseWriter, r *http.Request) {
	a.setBan(w, r, false, "")
}

func (a *API) setBan(w http.ResponseWriter, r *http.Request, banned bool, reason string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user id", false)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	target, ok := a.accounts[id]
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "User not found", false)
		return
	}
	if target.user.Banned == banned {
		if banned {
			utils.WriteError(w, http.StatusConflict, "User is already banned", false)
		} else {
			utils.WriteError(w, http.StatusConflict, "User is not banned", false)
		}
		return
	}

	target.user.Banned = banned
	target.user.BanReason = nil
	if banned {
		target.user.BanReason = &reason
	}
	w.WriteHeader(http.StatusNoContent)
}
