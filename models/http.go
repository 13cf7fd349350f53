// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	TOTPCode       string `json:"totpCode,omitempty"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// LoginResponse is the success body of POST /login. When TOTPRequired is
// set no token is issued.
type LoginResponse struct {
	Token           string `json:"token,omitempty"`
	EmailVerified   bool   `json:"emailVerified"`
	Username        string `json:"username"`
	IsPlayer        bool   `json:"isPlayer"`
	TOTPRequired    bool   `json:"totpRequired,omitempty"`
	DiscordVerified bool   `json:"discordVerified,omitempty"`
}

// VerifyEmailRequest is the body of POST /verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// VerifyEmailResponse is the body returned by POST /verify-email. A
// non-empty Token is a usable bearer credential.
type VerifyEmailResponse struct {
	Status          string `json:"status"`
	Token           string `json:"token,omitempty"`
	AlreadyVerified bool   `json:"alreadyVerified"`
}

// TOTPSetupResponse is the body returned by POST /totp/setup.
type TOTPSetupResponse struct {
	Secret        string `json:"secret"`
	QRCodeDataURI string `json:"qrCodeDataUri"`
}

// TOTPCodeRequest is the body of POST /totp/verify and POST /totp/disable.
type TOTPCodeRequest struct {
	Code string `json:"code" validate:"len=6,numeric"`
}

// ResetSeasonRequest is the body of POST /admin/season/reset. The code is a
// re-authentication factor for the destructive call.
type ResetSeasonRequest struct {
	TOTPCode string `json:"totpCode" validate:"len=6,numeric"`
}

// BanRequest is the body of POST /admin/users/{id}/ban.
type BanRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ApplicationRequest is the body of POST /applications.
type ApplicationRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// APIErrorBody is the JSON error payload of the API. TOTPRequired may be
// set on an error response as well as on a success body.
type APIErrorBody struct {
	Message      string `json:"message"`
	Error        string `json:"error,omitempty"`
	TOTPRequired bool   `json:"totpRequired,omitempty"`
}
