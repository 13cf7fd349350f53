// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	// CaptchaToken is the only anti-abuse token /login accepts. The mint
	// endpoint hands it out.
	CaptchaToken = "apitest-captcha"

	// TOTPSecret is returned by every /totp/setup call.
	TOTPSecret = "JBSWY3DPEHPK3PXP"

	tokenIssuer = "apitest"
	tokenTTL    = time.Hour
)

type account struct {
	user         models.User
	passwordHash []byte
	// totpCode is the only code accepted for this account.
	totpCode    string
	pendingTOTP bool
}

// API is the in-memory portal API. The zero value is not usable; call [New].
type API struct {
	mu           sync.Mutex
	signKey      string
	nextID       int64
	accounts     map[int64]*account
	byName       map[string]int64
	verification map[string]int64
	revoked      map[string]struct{}
	applications map[int64][]string
	seasonResets int
	loginCalls   int
	requests     []Request
	logger       *logger.Logger

	// TOTPViaError makes /login ask for the second factor with a 401 error
	// body instead of a 200 body. Both forms exist upstream.
	TOTPViaError bool
}

func New() *API {
	return NewWithLogger(logger.Nop())
}

// NewWithLogger is [New] with request logging to log.
func NewWithLogger(log *logger.Logger) *API {
	return &API{
		logger:       log,
		signKey:      "apitest-sign-key",
		accounts:     make(map[int64]*account),
		byName:       make(map[string]int64),
		verification: make(map[string]int64),
		revoked:      make(map[string]struct{}),
		applications: make(map[int64][]string),
	}
}

// Handler returns the chi router serving the API.
func (a *API) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(a.withRequestID)
	router.Use(a.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", a.login)
		r.Post("/verify-email", a.verifyEmail)
		r.Post("/captcha/mint", a.mintCaptcha)
	})

	router.Group(func(r chi.Router) {
		r.Use(a.auth)
		r.Get("/users/me", a.me)
		r.Post("/totp/setup", a.setupTOTP)
		r.Post("/totp/verify", a.verifyTOTP)
		r.Post("/totp/disable", a.disableTOTP)
		r.Post("/applications", a.submitApplication)

		r.Route("/admin", func(r chi.Router) {
			r.With(a.requireRole(models.RoleAdmin)).Post("/season/reset", a.resetSeason)
			r.With(a.requireRole(models.RoleModerator, models.RoleAdmin)).Post("/users/{id}/ban", a.ban)
			r.With(a.requireRole(models.RoleModerator, models.RoleAdmin)).Post("/users/{id}/unban", a.unban)
		})
	})

	return router
}

// AddUser registers user with password. A non-empty totpCode enables the
// second factor and is the only code accepted for it. The stored copy with
// its assigned ID is returned.
func (a *API) AddUser(user models.User, password, totpCode string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	user.ID = a.nextID
	user.TOTPEnabled = totpCode != ""
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	a.accounts[user.ID] = &account{user: user, passwordHash: hash, totpCode: totpCode}
	a.byName[user.Username] = user.ID
	return user
}

// SetTOTPCode changes the code accepted for userID, for accounts that
// enable the second factor through /totp/setup.
func (a *API) SetTOTPCode(userID int64, code string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if acc, ok := a.accounts[userID]; ok {
		acc.totpCode = code
	}
}

// AddVerificationToken makes token verify userID's email address.
func (a *API) AddVerificationToken(token string, userID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.verification[token] = userID
}

// IssueToken signs a bearer token for userID as /login would.
func (a *API) IssueToken(userID int64) (string, error) {
	return utils.GenerateJWTToken(tokenIssuer, userID, tokenTTL, a.signKey)
}

// Revoke makes every later request carrying token fail with 401.
func (a *API) Revoke(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.revoked[token] = struct{}{}
}

// User returns the current server-side copy of userID.
func (a *API) User(userID int64) (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	acc, ok := a.accounts[userID]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

// Applications returns the texts submitted by userID.
func (a *API) Applications(userID int64) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.applications[userID]...)
}

func (a *API) SeasonResets() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasonResets
}

func (a *API) LoginCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loginCalls
}

// Request is what the API remembers about one received request.
type Request struct {
	Method    string
	Path      string
	RequestID string
}

// Requests returns every request received, in arrival order.
func (a *API) Requests() []Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Request(nil), a.requests...)
}
