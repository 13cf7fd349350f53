package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/captcha"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/mock"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

var (
	member = models.User{ID: 7, Username: "alex", Role: models.RoleOrdinary, EmailVerified: true}
	root   = models.User{ID: 1, Username: "root", Role: models.RoleAdmin, EmailVerified: true, TOTPEnabled: true}
	cred   = models.Credential{Token: "tok-1"}

	errInvalidCode = &adapter.APIError{Status: http.StatusBadRequest, Message: "Invalid TOTP code"}
)

type fixture struct {
	services *service.ClientServices
	creds    *mock.MockCredentialStore
	api      *mock.MockServerAdapter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	api := mock.NewMockServerAdapter(ctrl)

	services := service.NewClientServices(creds, api, captcha.NewStaticMinter("captcha-ok"), nil, time.Minute, logger.Nop())
	return &fixture{services: services, creds: creds, api: api}
}

// bootAnonymous resolves the session with an empty store.
func (f *fixture) bootAnonymous(t *testing.T) {
	t.Helper()
	f.creds.EXPECT().Get(gomock.Any()).Return(models.Credential{}, false, nil)
	require.NoError(t, f.services.Sessions.Boot(context.Background()))
}

// bootAs resolves the session with a stored credential that belongs to user.
func (f *fixture) bootAs(t *testing.T, user models.User) {
	t.Helper()
	f.creds.EXPECT().Get(gomock.Any()).Return(cred, true, nil)
	f.api.EXPECT().CurrentUser(gomock.Any()).Return(user, nil)
	require.NoError(t, f.services.Sessions.Boot(context.Background()))
	require.True(t, f.services.Sessions.Current().IsAuthenticated())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

// typeInto feeds s to m one key at a time, as a user would type it.
func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

var (
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlU = tea.KeyMsg{Type: tea.KeyCtrlU}
	ctrlV = tea.KeyMsg{Type: tea.KeyCtrlV}
)

// feed runs cmd and hands the messages it produces back to m. Commands
// returned by those updates are not followed.
func feed(m tea.Model, cmd tea.Cmd) tea.Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			m = feed(m, c)
		}
	default:
		m, _ = m.Update(msg)
	}
	return m
}
