// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential wraps the opaque bearer token issued by the API.
// The client never parses or inspects the token; it is only stored,
// attached to requests and discarded.
type Credential struct {
	Token string
}

// IsZero reports whether the credential carries no token.
func (c Credential) IsZero() bool {
	return c.Token == ""
}

// String hides the token value so it never ends up in logs.
func (c Credential) String() string {
	if c.IsZero() {
		return "<none>"
	}
	return "<redacted>"
}
