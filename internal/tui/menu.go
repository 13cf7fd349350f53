package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

const actionLogout = "logout"

type menuItem struct {
	title string
	route models.Route
	// logout items sign out instead of navigating
	logout bool
}

// MenuModel is the home screen. Its entries depend on the session: signed
// out users see sign-in and email verification, signed in users see their
// account screens, and admin entries appear for admins only.
type MenuModel struct {
	ctx      context.Context
	services *service.ClientServices

	idx    int
	status string
	errMsg string
}

func NewMenuModel(ctx context.Context, services *service.ClientServices) *MenuModel {
	return &MenuModel{ctx: ctx, services: services}
}

func (m *MenuModel) Init() tea.Cmd {
	m.errMsg = ""
	m.clampIdx()
	return nil
}

func (m *MenuModel) items() []menuItem {
	s := m.services.Sessions.Current()
	if !s.IsAuthenticated() {
		return []menuItem{
			{title: "Sign in", route: models.RouteLogin},
			{title: "Verify email", route: models.RouteVerify},
		}
	}

	items := []menuItem{
		{title: "Profile", route: models.RouteProfile},
		{title: "Two-factor authentication", route: models.RouteTOTP},
		{title: "Apply for membership", route: models.RouteApply},
	}
	if s.User.CanModerate() {
		items = append(items, menuItem{title: "Moderation", route: models.RouteModeration})
	}
	if s.IsAdmin() {
		items = append(items, menuItem{title: "Season administration", route: models.RouteAdmin})
	}
	return append(items, menuItem{title: "Sign out", logout: true})
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.clampIdx()
		return m, nil
	case actionDoneMsg:
		m.clampIdx()
		if msg.action == actionLogout {
			if msg.err != nil {
				m.errMsg = humanizeError(msg.err)
			} else {
				m.status = "Signed out"
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		m.errMsg = ""
		item := items[m.idx]
		if item.logout {
			return m, m.cmdLogout()
		}
		return m, func() tea.Msg { return NavigateTo{Route: item.route} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	items := m.items()

	s := m.services.Sessions.Current()
	if s.IsAuthenticated() {
		b.WriteString(fmt.Sprintf("Signed in as %s (%s)\n\n", s.User.Username, s.User.Role))
	} else {
		b.WriteString("Not signed in\n\n")
	}

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(items))) + 2
	if w := lipgloss.Width("ID"); w+2 > idColWidth {
		idColWidth = w + 2
	}
	actionColWidth := lipgloss.Width("Action")
	for _, item := range items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

func (m *MenuModel) clampIdx() {
	if n := len(m.items()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		return actionDoneMsg{action: actionLogout, err: sessions.Logout(ctx)}
	}
}
