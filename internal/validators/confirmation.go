// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-portal-client/models"
)

// SeasonResetPhrase must be typed verbatim to reset the season.
const SeasonResetPhrase = "RESET SEASON"

// ConfirmationGate guards a destructive action behind an exact re-typed
// phrase plus a fresh six-digit TOTP code. The code is only shape-checked;
// the server verifies it.
type ConfirmationGate struct {
	ExpectedPhrase string
}

// NewSeasonResetGate returns the gate for the season reset action.
func NewSeasonResetGate() ConfirmationGate {
	return ConfirmationGate{ExpectedPhrase: SeasonResetPhrase}
}

// Challenge starts an empty challenge bound to the gate's phrase.
func (g ConfirmationGate) Challenge() models.ConfirmationChallenge {
	return models.ConfirmationChallenge{ExpectedPhrase: g.ExpectedPhrase}
}

// Ready reports whether the confirm control may be enabled.
func (g ConfirmationGate) Ready(c models.ConfirmationChallenge) bool {
	return g.checkChallenge(c) == nil
}

// Check is run immediately before the action fires, independently of
// whatever the UI last computed with Ready.
func (g ConfirmationGate) Check(actor *models.User, c models.ConfirmationChallenge) error {
	if actor == nil || !actor.TOTPEnabled {
		return ErrTOTPNotEnabled
	}
	return g.checkChallenge(c)
}

func (g ConfirmationGate) checkChallenge(c models.ConfirmationChallenge) error {
	if g.ExpectedPhrase == "" || c.EnteredPhrase != g.ExpectedPhrase {
		return ErrPhraseMismatch
	}
	if !isSixDigits(c.TOTPCode) {
		return ErrMalformedCode
	}
	return nil
}

func isSixDigits(code string) bool {
	if len(code) != models.TOTPCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
