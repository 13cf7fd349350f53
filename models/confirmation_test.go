// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"digits only", "123456", "123456"},
		{"strips separators", "123-456", "123456"},
		{"strips letters", "a1b2c3", "123"},
		{"truncates", "12345678", "123456"},
		{"empty", "", ""},
		{"non ascii digits dropped", "١٢٣456", "456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCode(tt.in))
		})
	}
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, []string{
		"Build version: N/A",
		"Build date: 2026-10-01",
		"Build commit: N/A",
	}, info.Lines())
}

func TestCredential_StringRedacts(t *testing.T) {
	assert.Equal(t, "<none>", Credential{}.String())
	assert.Equal(t, "<redacted>", Credential{Token: "abc"}.String())
	assert.True(t, Credential{}.IsZero())
}
