// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// TOTPCodeLength is the exact number of digits in a TOTP code.
const TOTPCodeLength = 6

// ConfirmationChallenge holds the user input for a destructive action that
// must be confirmed by re-typing a fixed phrase and supplying a TOTP code.
type ConfirmationChallenge struct {
	// ExpectedPhrase is matched exactly, case and punctuation included.
	ExpectedPhrase string

	// EnteredPhrase is what the user typed.
	EnteredPhrase string

	// TOTPCode is the digits-only second factor.
	TOTPCode string
}

// SanitizeCode strips every non-digit from raw and truncates the result to
// [TOTPCodeLength] digits.
func SanitizeCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == TOTPCodeLength {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
