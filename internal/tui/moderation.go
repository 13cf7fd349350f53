package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	actionBan   = "ban"
	actionUnban = "unban"

	msgBadUserID = "Enter a numeric user id"
)

// ModerationModel bans and unbans members by ID. Every action asks for a
// y/n confirmation first.
type ModerationModel struct {
	ctx      context.Context
	sessions service.SessionManager
	admin    service.AdminService

	inputs  []textinput.Model
	focus   int
	confirm *confirmModel
	pending string
	busy    bool
	status  string
	errMsg  string
}

func NewModerationModel(ctx context.Context, sessions service.SessionManager, admin service.AdminService) *ModerationModel {
	idInput := textinput.New()
	idInput.Placeholder = "user id"
	idInput.CharLimit = 19
	idInput.Width = 20

	reasonInput := textinput.New()
	reasonInput.Placeholder = "reason (ban only)"
	reasonInput.CharLimit = 500
	reasonInput.Width = 48

	return &ModerationModel{
		ctx:      ctx,
		sessions: sessions,
		admin:    admin,
		inputs:   []textinput.Model{idInput, reasonInput},
	}
}

func (m *ModerationModel) Init() tea.Cmd {
	m.confirm = nil
	m.pending = ""
	m.busy = false
	m.status = ""
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(0)
	return textinput.Blink
}

func (m *ModerationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		if msg.action != actionBan && msg.action != actionUnban {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.action == actionBan {
			m.status = "User " + m.inputs[0].Value() + " banned"
		} else {
			m.status = "User " + m.inputs[0].Value() + " unbanned"
		}
		m.inputs[1].SetValue("")
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.confirm != nil {
			return m, m.updateConfirm(msg)
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			m.ask(actionBan)
			return m, nil
		case key.Matches(msg, keys.unban):
			m.ask(actionUnban)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ModerationModel) ask(action string) {
	m.status = ""
	m.errMsg = ""

	id, ok := m.userID()
	if !ok {
		m.errMsg = msgBadUserID
		return
	}
	if action == actionBan && strings.TrimSpace(m.inputs[1].Value()) == "" {
		m.errMsg = "Reason is required"
		return
	}

	m.pending = action
	m.confirm = &confirmModel{message: fmt.Sprintf("%s user %d?", strings.ToUpper(action[:1])+action[1:], id)}
}

func (m *ModerationModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		action := m.pending
		m.confirm = nil
		m.pending = ""
		id, ok := m.userID()
		if !ok {
			m.errMsg = msgBadUserID
			return nil
		}
		m.busy = true
		return m.cmdModerate(action, id, strings.TrimSpace(m.inputs[1].Value()))
	case key.Matches(msg, keys.no):
		m.confirm = nil
		m.pending = ""
	}
	return nil
}

func (m *ModerationModel) userID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(m.inputs[0].Value()), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (m *ModerationModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	s := m.sessions.Current()
	if s.User != nil && !s.User.CanModerate() {
		b.WriteString(errorStyle.Render("Only moderators and admins can ban members."))
		b.WriteString("\n\n")
	}

	b.WriteString(fieldRow("User ID", "["+m.inputs[0].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Reason", "["+m.inputs[1].View()+"]"))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n[Working...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("MODERATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: ban │ ctrl+u: unban")
}

func (m *ModerationModel) cmdModerate(action string, id int64, reason string) tea.Cmd {
	ctx := m.ctx
	admin := m.admin
	if action == actionUnban {
		return func() tea.Msg {
			return actionDoneMsg{action: action, err: admin.UnbanUser(ctx, id)}
		}
	}
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: admin.BanUser(ctx, id, reason)}
	}
}

func (m *ModerationModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
