package tui

import (
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

// NavigateTo asks the router to open Route. The guard decides whether it
// renders, waits or redirects.
type NavigateTo struct {
	Route models.Route
}

type sessionChangedMsg struct {
	session models.Session
}

type bootDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	result service.LoginResult
	err    error
}

type verifyDoneMsg struct {
	resp models.VerifyEmailResponse
	err  error
}

type totpSetupMsg struct {
	setup models.TOTPSetupResponse
	err   error
}

// actionDoneMsg reports a side-effecting call that returns only an error.
type actionDoneMsg struct {
	action string
	err    error
}
