// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the profile snapshot returned by GET /users/me.
// The client treats it as read-only: it is always replaced as a whole and
// never patched field by field.
type User struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"id"`

	// Username is the unique public account name.
	Username string `json:"username"`

	// Email is the contact address of the account.
	Email string `json:"email"`

	// Role is the single authorization role of the account.
	Role Role `json:"role"`

	// EmailVerified reports whether the email address was confirmed.
	EmailVerified bool `json:"emailVerified"`

	// DiscordVerified reports whether a Discord account was linked.
	DiscordVerified bool `json:"discordVerified"`

	// DiscordUsername is the linked Discord handle, display only.
	DiscordUsername string `json:"discordUsername,omitempty"`

	// TOTPEnabled reports whether a second authentication factor is active.
	TOTPEnabled bool `json:"totpEnabled"`

	// Banned marks an account that may still sign in but cannot perform
	// member actions.
	Banned bool `json:"banned"`

	// BanReason is the moderator-provided explanation for a ban.
	BanReason *string `json:"banReason,omitempty"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds [RoleAdmin].
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the user holds [RoleModerator].
func (u User) IsModerator() bool {
	return u.Role == RoleModerator
}

// CanModerate reports whether the user may ban or unban members.
func (u User) CanModerate() bool {
	switch u.Role {
	case RoleAdmin, RoleModerator:
		return true
	case RoleOrdinary:
		return false
	default:
		return false
	}
}

// CanApply reports whether the user may submit a membership application:
// both email and Discord must be verified and the account must not be banned.
func (u User) CanApply() bool {
	return u.EmailVerified && u.DiscordVerified && !u.Banned
}
