// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

// LoginModel is the Bubble Tea model for the login screen. It shows the
// username and password inputs first and switches to a code input when the
// server asks for a second factor.
type LoginModel struct {
	ctx  context.Context
	flow service.LoginFlow

	inputs     []textinput.Model
	code       textinput.Model
	focus      int
	needsCode  bool
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The username field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, flow service.LoginFlow) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 32
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	codeInput := newCodeInput()

	return &LoginModel{
		ctx:    ctx,
		flow:   flow,
		inputs: []textinput.Model{loginInput, passwordInput},
		code:   codeInput,
	}
}

// Init implements [tea.Model]. Every visit starts a fresh first step.
func (m *LoginModel) Init() tea.Cmd {
	m.flow.Reset()
	m.needsCode = false
	m.submitting = false
	m.errMsg = ""
	m.code.SetValue("")
	m.inputs[1].SetValue("")
	m.setFocus(0)
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginDoneMsg   clears submitting state and moves to the code step,
//     the profile, or shows the error.
//   - esc            cancels and navigates back to the menu.
//   - tab/shift+tab  move focus between username and password.
//   - enter          dispatches the async submit for the current step.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		return m, m.handleDone(done)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.needsCode && !m.submitting {
				m.flow.Reset()
				m.needsCode = false
				m.errMsg = ""
				m.code.SetValue("")
				m.setFocus(0)
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case "tab":
			if !m.needsCode {
				m.setFocus((m.focus + 1) % len(m.inputs))
			}
			return m, nil
		case "shift+tab":
			if !m.needsCode {
				m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			if m.needsCode {
				return m, m.cmdSubmitCode(m.code.Value())
			}
			return m, m.cmdSubmit(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	if m.needsCode {
		m.code, cmd = updateCodeInput(m.code, msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) handleDone(done loginDoneMsg) tea.Cmd {
	m.submitting = false

	if done.result.NeedsSecondFactor {
		m.needsCode = true
		m.inputs[m.focus].Blur()
		m.code.SetValue("")
		m.code.Focus()
	}
	if done.err != nil {
		m.errMsg = humanizeError(done.err)
		if m.flow.State() == service.LoginIdle && m.needsCode {
			// the server refused the whole attempt; start over
			m.needsCode = false
			m.code.Blur()
			m.setFocus(1)
		}
		return nil
	}
	if done.result.User != nil {
		m.inputs[1].SetValue("")
		return func() tea.Msg { return NavigateTo{Route: models.RouteProfile} }
	}
	return nil
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("Username   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.needsCode {
		b.WriteString("\nTwo-factor authentication is enabled for this account.\n")
		b.WriteString("Code       │ [")
		b.WriteString(m.code.View())
		b.WriteString("]\n")
	}

	switch {
	case m.submitting:
		b.WriteString("\n[Signing in...]\n")
	case m.needsCode:
		b.WriteString("\n[Verify]\n")
	default:
		b.WriteString("\n[Sign in]\n")
	}

	renderStatus(&b, "", m.errMsg)

	hotKeys := "esc: back │ tab: next field │ enter: submit"
	if m.needsCode {
		hotKeys = "esc: start over │ enter: verify"
	}
	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LoginModel) cmdSubmit(username, password string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	return func() tea.Msg {
		res, err := flow.Submit(ctx, username, password)
		return loginDoneMsg{result: res, err: err}
	}
}

func (m *LoginModel) cmdSubmitCode(code string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow
	return func() tea.Msg {
		res, err := flow.SubmitCode(ctx, code)
		return loginDoneMsg{result: res, err: err}
	}
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
