// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{" moderator ", RoleModerator},
		{"user", RoleOrdinary},
		{"", RoleOrdinary},
		{"superuser", RoleOrdinary},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestRole_UnmarshalJSON_InsideUser(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"username":"steve","role":"admin","totpEnabled":true}`), &u))

	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.IsAdmin())
	assert.False(t, u.IsModerator())
	assert.True(t, u.TOTPEnabled)
}

func TestRole_UnmarshalJSON_NullAndUnknown(t *testing.T) {
	var r Role = RoleAdmin
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.Equal(t, RoleOrdinary, r)

	r = RoleAdmin
	require.NoError(t, json.Unmarshal([]byte(`"owner"`), &r))
	assert.Equal(t, RoleOrdinary, r)
}

func TestRole_UnmarshalJSON_WrongType(t *testing.T) {
	var r Role
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestRole_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(RoleModerator)
	require.NoError(t, err)
	assert.JSONEq(t, `"moderator"`, string(b))
}

func TestUser_Capabilities(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.CanModerate())
	assert.True(t, User{Role: RoleModerator}.CanModerate())
	assert.False(t, User{Role: RoleOrdinary}.CanModerate())

	assert.True(t, User{EmailVerified: true, DiscordVerified: true}.CanApply())
	assert.False(t, User{EmailVerified: true}.CanApply())
	assert.False(t, User{DiscordVerified: true}.CanApply())
	assert.False(t, User{EmailVerified: true, DiscordVerified: true, Banned: true}.CanApply())
}
