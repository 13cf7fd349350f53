package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	actionEnableTOTP  = "totp-enable"
	actionDisableTOTP = "totp-disable"
)

// writeClipboard is swapped in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// TOTPModel enables or disables the second factor. Enabling is a two-step
// process: setup returns a secret for the authenticator app, then a code
// from that app confirms it.
type TOTPModel struct {
	ctx      context.Context
	sessions service.SessionManager
	account  service.AccountService

	code   textinput.Model
	secret string
	busy   bool
	status string
	errMsg string
}

func NewTOTPModel(ctx context.Context, sessions service.SessionManager, account service.AccountService) *TOTPModel {
	return &TOTPModel{ctx: ctx, sessions: sessions, account: account, code: newCodeInput()}
}

func (m *TOTPModel) Init() tea.Cmd {
	m.secret = ""
	m.busy = false
	m.status = ""
	m.errMsg = ""
	m.code.SetValue("")
	m.code.Focus()
	return textinput.Blink
}

func (m *TOTPModel) enabled() bool {
	s := m.sessions.Current()
	return s.User != nil && s.User.TOTPEnabled
}

func (m *TOTPModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case totpSetupMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.secret = msg.setup.Secret
		m.status = "Add the secret to your authenticator app, then enter a code"
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.code.SetValue("")
		m.secret = ""
		switch msg.action {
		case actionEnableTOTP:
			m.status = "Two-factor authentication enabled"
		case actionDisableTOTP:
			m.status = "Two-factor authentication disabled"
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case key.Matches(msg, keys.setup) && !m.enabled():
			m.busy = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdSetup()
		case key.Matches(msg, keys.copy) && m.secret != "":
			if err := writeClipboard(m.secret); err != nil {
				m.errMsg = "Could not copy to clipboard: " + err.Error()
			} else {
				m.status = "Secret copied to clipboard"
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			m.status = ""
			m.errMsg = ""
			if !m.enabled() && m.secret == "" {
				m.errMsg = "Press s to generate a secret first"
				return m, nil
			}
			m.busy = true
			return m, m.cmdChange(m.code.Value())
		}
	}

	var cmd tea.Cmd
	m.code, cmd = updateCodeInput(m.code, msg)
	return m, cmd
}

func (m *TOTPModel) View() string {
	var b strings.Builder
	enabled := m.enabled()

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	b.WriteString(fieldRow("Status", state))
	b.WriteString("\n")

	hotKeys := "esc: back │ enter: disable"
	if !enabled {
		hotKeys = "esc: back │ s: generate secret │ enter: enable"
		if m.secret != "" {
			b.WriteString(fieldRow("Secret", m.secret))
			b.WriteString("\n")
			hotKeys += " │ c: copy secret"
		}
	}

	b.WriteString(fieldRow("Code", "["+m.code.View()+"]"))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n[Working...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("TWO-FACTOR AUTHENTICATION", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *TOTPModel) cmdSetup() tea.Cmd {
	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		setup, err := account.SetupTOTP(ctx)
		return totpSetupMsg{setup: setup, err: err}
	}
}

func (m *TOTPModel) cmdChange(code string) tea.Cmd {
	ctx := m.ctx
	account := m.account
	if m.enabled() {
		return func() tea.Msg {
			return actionDoneMsg{action: actionDisableTOTP, err: account.DisableTOTP(ctx, code)}
		}
	}
	return func() tea.Msg {
		return actionDoneMsg{action: actionEnableTOTP, err: account.EnableTOTP(ctx, code)}
	}
}
