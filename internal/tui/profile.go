package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const (
	actionRefresh       = "refresh"
	actionProfileLogout = "profile-logout"
)

// ProfileModel shows the signed-in user. It reads the snapshot from the
// session manager on every render, so refreshes and sign-outs show up
// without extra bookkeeping.
type ProfileModel struct {
	ctx      context.Context
	sessions service.SessionManager

	busy   bool
	status string
	errMsg string
}

func NewProfileModel(ctx context.Context, sessions service.SessionManager) *ProfileModel {
	return &ProfileModel{ctx: ctx, sessions: sessions}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.busy = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.action == actionRefresh {
			m.status = "Profile refreshed"
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case key.Matches(msg, keys.refresh):
			m.busy = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdAction(actionRefresh, m.sessions.Refresh)
		case key.Matches(msg, keys.logout):
			m.busy = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdAction(actionProfileLogout, m.sessions.Logout)
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	s := m.sessions.Current()
	if s.User == nil {
		b.WriteString("Not signed in\n")
	} else {
		u := s.User
		b.WriteString(fieldRow("Field", "Value"))
		b.WriteString("\n───────────────┼──────────────────────────────\n")
		rows := [][2]string{
			{"ID", strconv.FormatInt(u.ID, 10)},
			{"Username", u.Username},
			{"Email", u.Email},
			{"Role", u.Role.String()},
			{"Email verified", yesNo(u.EmailVerified)},
			{"Discord", discordLine(u)},
			{"Two-factor", yesNo(u.TOTPEnabled)},
			{"Banned", yesNo(u.Banned)},
		}
		if u.Banned {
			rows = append(rows, [2]string{"Ban reason", valueOrDash(u.BanReason)})
		}
		if !u.CreatedAt.IsZero() {
			rows = append(rows, [2]string{"Member since", u.CreatedAt.Format("2006-01-02")})
		}
		for _, row := range rows {
			b.WriteString(fieldRow(row[0], fitText(row[1], 48)))
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\n[Working...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh │ l: sign out")
}

func (m *ProfileModel) cmdAction(action string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func discordLine(u *models.User) string {
	if !u.DiscordVerified {
		return "not linked"
	}
	if u.DiscordUsername == "" {
		return "linked"
	}
	return u.DiscordUsername
}
