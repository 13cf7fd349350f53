// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginAttempt is a single, transient login submission. It is never
// persisted. RecaptchaToken is minted right before each submission and is
// never reused.
type LoginAttempt struct {
	Username       string `validate:"required"`
	Password       string `validate:"required"`
	TOTPCode       string `validate:"omitempty,len=6,numeric"`
	RecaptchaToken string `validate:"required"`
}

// LoginOutcomeKind tags the variant held by a [LoginOutcome].
type LoginOutcomeKind int

const (
	// OutcomeRejected means the credentials or code were refused.
	OutcomeRejected LoginOutcomeKind = iota
	// OutcomeTOTPRequired means a second factor must be supplied;
	// no credential has been issued.
	OutcomeTOTPRequired
	// OutcomeSuccess means a credential was issued.
	OutcomeSuccess
)

// String returns a short label used in logs and metrics.
func (k LoginOutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTOTPRequired:
		return "totp_required"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// LoginOutcome is the result of one login submission as seen past the
// transport boundary. Both upstream signalling shapes of the second-factor
// requirement are collapsed into [OutcomeTOTPRequired] before this value is
// built.
type LoginOutcome struct {
	Kind LoginOutcomeKind

	// Credential is set for OutcomeSuccess only.
	Credential Credential

	// Reason is the server message for OutcomeRejected, possibly empty.
	Reason string
}

// LoginSucceeded builds an [OutcomeSuccess] outcome.
func LoginSucceeded(cred Credential) LoginOutcome {
	return LoginOutcome{Kind: OutcomeSuccess, Credential: cred}
}

// LoginNeedsTOTP builds an [OutcomeTOTPRequired] outcome.
func LoginNeedsTOTP() LoginOutcome {
	return LoginOutcome{Kind: OutcomeTOTPRequired}
}

// LoginRejected builds an [OutcomeRejected] outcome.
func LoginRejected(reason string) LoginOutcome {
	return LoginOutcome{Kind: OutcomeRejected, Reason: reason}
}
