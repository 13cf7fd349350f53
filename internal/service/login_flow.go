// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/captcha"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/metrics"
	"github.com/MKhiriev/go-portal-client/internal/validators"
	"github.com/MKhiriev/go-portal-client/models"
)

// LoginState is the position of a [LoginFlow].
type LoginState int

const (
	LoginIdle LoginState = iota
	// LoginAwaitingSecondFactor holds the username and password in memory
	// until a code is submitted or the flow is reset.
	LoginAwaitingSecondFactor
)

func (s LoginState) String() string {
	switch s {
	case LoginIdle:
		return "idle"
	case LoginAwaitingSecondFactor:
		return "awaiting_second_factor"
	default:
		return "unknown"
	}
}

// LoginResult is what a submission produced when it did not fail.
type LoginResult struct {
	// NeedsSecondFactor is set when the server asked for a TOTP code.
	NeedsSecondFactor bool
	// User is the signed-in profile, set when the login completed.
	User *models.User
}

// Outcome labels for login metrics beyond [models.LoginOutcomeKind].
const (
	outcomeInvalidInput = "invalid_input"
	outcomeError        = "error"
)

// Message used when the server still asks for a code after one was sent.
const invalidCodeMessage = "Invalid two-factor code"

type loginFlow struct {
	adapter   adapter.ServerAdapter
	sessions  SessionManager
	minter    captcha.TokenMinter
	validator validators.Validator
	metrics   *metrics.ClientMetrics
	logger    *logger.Logger

	mu       sync.Mutex
	state    LoginState
	username string
	password string
	inFlight bool
	epoch    uint64
}

// NewLoginFlow returns an idle flow. m may be nil.
func NewLoginFlow(
	serverAdapter adapter.ServerAdapter,
	sessions SessionManager,
	minter captcha.TokenMinter,
	validator validators.Validator,
	m *metrics.ClientMetrics,
	log *logger.Logger,
) LoginFlow {
	return &loginFlow{
		adapter:   serverAdapter,
		sessions:  sessions,
		minter:    minter,
		validator: validator,
		metrics:   m,
		logger:    log,
	}
}

func (f *loginFlow) State() LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *loginFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toIdle()
	f.epoch++
}

// toIdle must be called with mu held.
func (f *loginFlow) toIdle() {
	f.state = LoginIdle
	f.username = ""
	f.password = ""
}

func (f *loginFlow) Submit(ctx context.Context, username, password string) (LoginResult, error) {
	epoch, err := f.begin()
	if err != nil {
		return LoginResult{}, err
	}
	defer f.end()

	f.mu.Lock()
	f.toIdle()
	f.mu.Unlock()

	attempt := models.LoginAttempt{Username: username, Password: password}
	return f.attempt(ctx, epoch, attempt, validators.FieldUsername, validators.FieldPassword)
}

func (f *loginFlow) SubmitCode(ctx context.Context, code string) (LoginResult, error) {
	if code == "" {
		return LoginResult{}, validators.ErrMalformedCode
	}

	epoch, err := f.begin()
	if err != nil {
		return LoginResult{}, err
	}
	defer f.end()

	f.mu.Lock()
	if f.state != LoginAwaitingSecondFactor {
		f.mu.Unlock()
		return LoginResult{}, ErrNoPendingLogin
	}
	attempt := models.LoginAttempt{Username: f.username, Password: f.password, TOTPCode: code}
	f.mu.Unlock()

	return f.attempt(ctx, epoch, attempt, validators.FieldUsername, validators.FieldPassword, validators.FieldTOTPCode)
}

func (f *loginFlow) begin() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return 0, ErrOperationInFlight
	}
	f.inFlight = true
	return f.epoch, nil
}

func (f *loginFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

// attempt runs one round trip: input check, fresh anti-abuse token, login
// request, then outcome handling. fields lists what the user typed in this
// round; the anti-abuse token is checked after minting.
func (f *loginFlow) attempt(ctx context.Context, epoch uint64, attempt models.LoginAttempt, fields ...string) (LoginResult, error) {
	log := f.logger.GetChildLogger()

	if err := f.validator.Validate(ctx, attempt, fields...); err != nil {
		f.metrics.ObserveLogin(outcomeInvalidInput)
		return LoginResult{}, err
	}

	token, err := f.minter.Mint(ctx, captcha.ActionLogin)
	if err != nil {
		f.metrics.ObserveLogin(outcomeError)
		return LoginResult{}, fmt.Errorf("anti-abuse token: %w", err)
	}
	attempt.RecaptchaToken = token
	if err = f.validator.Validate(ctx, attempt); err != nil {
		f.metrics.ObserveLogin(outcomeInvalidInput)
		return LoginResult{}, err
	}

	outcome, err := f.adapter.Login(ctx, attempt)
	if err != nil {
		// the flow stays where it was so the same step can be retried
		f.metrics.ObserveLogin(outcomeError)
		log.Err(err).Str("func", "loginFlow.attempt").Msg("login request failed")
		return LoginResult{}, err
	}
	f.metrics.ObserveLogin(outcome.Kind.String())

	switch outcome.Kind {
	case models.OutcomeTOTPRequired:
		f.mu.Lock()
		defer f.mu.Unlock()
		if attempt.TOTPCode != "" {
			// the code was not accepted; the server still wants one
			return LoginResult{NeedsSecondFactor: true}, newRejectedError(invalidCodeMessage)
		}
		if f.epoch == epoch {
			f.state = LoginAwaitingSecondFactor
			f.username = attempt.Username
			f.password = attempt.Password
		}
		log.Info().Str("func", "loginFlow.attempt").Str("username", attempt.Username).Msg("second factor required")
		return LoginResult{NeedsSecondFactor: true}, nil

	case models.OutcomeSuccess:
		f.idle(epoch)
		user, err := f.adapter.CurrentUser(adapter.WithCredential(ctx, outcome.Credential))
		if err != nil {
			return LoginResult{}, fmt.Errorf("fetch profile after login: %w", err)
		}
		if err = f.sessions.Install(ctx, outcome.Credential, user); err != nil {
			return LoginResult{}, err
		}
		log.Info().Str("func", "loginFlow.attempt").Str("username", user.Username).Msg("signed in")
		return LoginResult{User: &user}, nil

	case models.OutcomeRejected:
		f.idle(epoch)
		log.Info().Str("func", "loginFlow.attempt").Str("reason", outcome.Reason).Msg("login rejected")
		return LoginResult{}, newRejectedError(outcome.Reason)

	default:
		f.idle(epoch)
		return LoginResult{}, fmt.Errorf("%w: unknown login outcome %d", adapter.ErrMalformedResponse, outcome.Kind)
	}
}

func (f *loginFlow) idle(epoch uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch == epoch {
		f.toIdle()
	}
}
