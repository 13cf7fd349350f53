// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	actionResetSeason = "season-reset"

	msgPasteRejected = "Type the phrase by hand, pasting is disabled"
)

const (
	adminPhraseInput = iota
	adminCodeInput
)

// AdminModel guards the season reset. The confirm control stays disabled
// until the phrase matches exactly and a six-digit code is present; the
// phrase must be typed, pasted text is dropped.
type AdminModel struct {
	ctx      context.Context
	sessions service.SessionManager
	admin    service.AdminService

	inputs []textinput.Model
	focus  int
	busy   bool
	status string
	errMsg string
}

func NewAdminModel(ctx context.Context, sessions service.SessionManager, admin service.AdminService) *AdminModel {
	phraseInput := textinput.New()
	phraseInput.Placeholder = admin.Gate().ExpectedPhrase
	phraseInput.CharLimit = 64
	phraseInput.Width = 24
	phraseInput.KeyMap.Paste.SetEnabled(false)

	codeInput := newCodeInput()

	return &AdminModel{
		ctx:      ctx,
		sessions: sessions,
		admin:    admin,
		inputs:   []textinput.Model{phraseInput, codeInput},
	}
}

func (m *AdminModel) Init() tea.Cmd {
	m.busy = false
	m.status = ""
	m.errMsg = ""
	m.clearInputs()
	m.setFocus(adminPhraseInput)
	return textinput.Blink
}

// challenge reflects the current input values.
func (m *AdminModel) challenge() models.ConfirmationChallenge {
	c := m.admin.Gate().Challenge()
	c.EnteredPhrase = m.inputs[adminPhraseInput].Value()
	c.TOTPCode = m.inputs[adminCodeInput].Value()
	return c
}

func (m *AdminModel) totpEnabled() bool {
	s := m.sessions.Current()
	return s.User != nil && s.User.TOTPEnabled
}

// confirmEnabled reports whether the confirm control accepts enter.
func (m *AdminModel) confirmEnabled() bool {
	return !m.busy && m.totpEnabled() && m.admin.Gate().Ready(m.challenge())
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		if msg.action != actionResetSeason {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.clearInputs()
		m.setFocus(adminPhraseInput)
		m.status = "Season reset"
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case !m.totpEnabled():
			return m, nil
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if !m.confirmEnabled() {
				return m, nil
			}
			m.busy = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdReset(m.challenge())
		case (msg.Paste || key.Matches(msg, keys.paste)) && m.focus == adminPhraseInput:
			m.errMsg = msgPasteRejected
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == adminCodeInput {
		m.inputs[m.focus], cmd = updateCodeInput(m.inputs[m.focus], msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AdminModel) View() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Resetting the season wipes the current season's progress for every member."))
	b.WriteString("\n\n")

	if !m.totpEnabled() {
		b.WriteString(msgEnableTOTPFirst)
		b.WriteString("\n")
		renderStatus(&b, m.status, m.errMsg)
		return renderPage("SEASON ADMINISTRATION", strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	b.WriteString("Type ")
	b.WriteString(phraseStyle.Render(m.admin.Gate().ExpectedPhrase))
	b.WriteString(" to confirm.\n\n")
	b.WriteString(fieldRow("Phrase", "["+m.inputs[adminPhraseInput].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Code", "["+m.inputs[adminCodeInput].View()+"]"))
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString("[Resetting...]")
	case m.confirmEnabled():
		b.WriteString(errorStyle.Render("[Reset season]"))
	default:
		b.WriteString(disabledStyle.Render("[Reset season]"))
	}
	b.WriteString("\n")
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("SEASON ADMINISTRATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: reset")
}

func (m *AdminModel) cmdReset(c models.ConfirmationChallenge) tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	return func() tea.Msg {
		return actionDoneMsg{action: actionResetSeason, err: admin.ResetSeason(ctx, c)}
	}
}

func (m *AdminModel) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

func (m *AdminModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
