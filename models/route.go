// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Route names a client screen. The active route plays the role of the
// browser location.
type Route string

const (
	RouteHome    Route = "home"
	RouteLogin   Route = "login"
	RouteVerify  Route = "verify-email"
	RouteProfile Route = "profile"
	RouteTOTP    Route = "totp"
	RouteApply   Route = "apply"
	RouteAdmin   Route = "admin"

	// RouteModeration is open to any signed-in user; the actions on it are
	// refused for users who cannot moderate.
	RouteModeration Route = "moderation"
)

// Capability describes what a route requires from the session.
type Capability int

const (
	// CapabilityNone admits everyone.
	CapabilityNone Capability = iota
	// CapabilityAuthenticated admits any signed-in user.
	CapabilityAuthenticated
	// CapabilityAdminOnly admits users holding [RoleAdmin].
	CapabilityAdminOnly
)
