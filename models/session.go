// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState enumerates the states of the client session.
type SessionState int

const (
	// StateBooting is the initial state while the stored credential is
	// being checked against the API.
	StateBooting SessionState = iota
	// StateAnonymous means no credential is held.
	StateAnonymous
	// StateAuthenticated means a credential is held and its profile is loaded.
	StateAuthenticated
)

// String returns a lowercase state name for logs.
func (s SessionState) String() string {
	switch s {
	case StateBooting:
		return "booting"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the session state. A non-nil User is
// present exactly when State is [StateAuthenticated].
type Session struct {
	State SessionState
	User  *User
}

// BootingSession returns the snapshot every session starts from.
func BootingSession() Session {
	return Session{State: StateBooting}
}

// AnonymousSession returns a snapshot without a user.
func AnonymousSession() Session {
	return Session{State: StateAnonymous}
}

// AuthenticatedSession returns a snapshot holding a private copy of user.
func AuthenticatedSession(user User) Session {
	u := user
	return Session{State: StateAuthenticated, User: &u}
}

// Loading reports whether the boot-time credential check is still running.
func (s Session) Loading() bool {
	return s.State == StateBooting
}

// IsAuthenticated reports whether a user is present.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the session user holds [RoleAdmin].
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin()
}

// IsModerator reports whether the session user holds [RoleModerator].
func (s Session) IsModerator() bool {
	return s.User != nil && s.User.IsModerator()
}
