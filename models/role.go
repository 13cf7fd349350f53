// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Role is the single authorization role carried by a portal account.
// The set is closed: every authorization decision switches over all values.
type Role int

const (
	// RoleOrdinary is a regular community member.
	RoleOrdinary Role = iota
	// RoleModerator may ban and unban members.
	RoleModerator
	// RoleAdmin has every moderator capability plus season management.
	RoleAdmin
)

// Wire values of [Role] used by the remote API.
const (
	roleOrdinaryWire  = "user"
	roleModeratorWire = "moderator"
	roleAdminWire     = "admin"
)

// ParseRole converts a wire value into a [Role]. Unknown values map to
// [RoleOrdinary] so that an unrecognised role never grants extra rights.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case roleAdminWire:
		return RoleAdmin
	case roleModeratorWire:
		return RoleModerator
	default:
		return RoleOrdinary
	}
}

// String returns the wire value of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return roleAdminWire
	case RoleModerator:
		return roleModeratorWire
	case RoleOrdinary:
		return roleOrdinaryWire
	default:
		return roleOrdinaryWire
	}
}

// MarshalJSON encodes the role as its wire string.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the wire string. A JSON null or unknown string
// decodes to [RoleOrdinary].
func (r *Role) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*r = RoleOrdinary
		return nil
	}
	*r = ParseRole(*s)
	return nil
}
