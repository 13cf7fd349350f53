package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const actionApply = "apply"

// ApplyModel lets a verified member submit a membership application.
type ApplyModel struct {
	ctx          context.Context
	sessions     service.SessionManager
	applications service.ApplicationService

	text       textarea.Model
	submitting bool
	submitted  bool
	status     string
	errMsg     string
}

func NewApplyModel(ctx context.Context, sessions service.SessionManager, applications service.ApplicationService) *ApplyModel {
	ta := textarea.New()
	ta.Placeholder = "Tell us about yourself"
	ta.CharLimit = 4000
	ta.SetWidth(60)
	ta.SetHeight(8)

	return &ApplyModel{ctx: ctx, sessions: sessions, applications: applications, text: ta}
}

func (m *ApplyModel) Init() tea.Cmd {
	m.submitting = false
	m.submitted = false
	m.status = ""
	m.errMsg = ""
	m.text.Reset()
	return m.text.Focus()
}

func (m *ApplyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		if msg.action != actionApply {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.submitted = true
		m.text.Blur()
		m.status = "Application submitted"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case key.Matches(msg, keys.submit):
			if m.submitting || m.submitted {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdSubmit(m.text.Value())
		}
		if m.submitting || m.submitted {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

func (m *ApplyModel) View() string {
	var b strings.Builder

	s := m.sessions.Current()
	if s.User != nil && !s.User.CanApply() {
		b.WriteString(errorStyle.Render("Verify your email and Discord account before applying."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.text.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("APPLY FOR MEMBERSHIP", strings.TrimRight(b.String(), "\n"), "esc: back │ ctrl+s: submit")
}

func (m *ApplyModel) cmdSubmit(text string) tea.Cmd {
	ctx := m.ctx
	applications := m.applications
	return func() tea.Msg {
		return actionDoneMsg{action: actionApply, err: applications.Submit(ctx, text)}
	}
}
