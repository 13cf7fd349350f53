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

// VerifyModel exchanges the token from a verification email. A response
// carrying a credential signs the user in.
type VerifyModel struct {
	ctx     context.Context
	account service.AccountService

	token      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

func NewVerifyModel(ctx context.Context, account service.AccountService) *VerifyModel {
	in := textinput.New()
	in.Placeholder = "token from the email"
	in.CharLimit = 512
	in.Width = 48

	return &VerifyModel{ctx: ctx, account: account, token: in}
}

func (m *VerifyModel) Init() tea.Cmd {
	m.token.SetValue("")
	m.token.Focus()
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		switch {
		case msg.resp.Token != "":
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteProfile} }
		case msg.resp.AlreadyVerified:
			m.status = "This address is already verified. You can sign in."
		default:
			m.status = "Email verified. You can sign in now."
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: models.RouteHome} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdVerify(m.token.Value())
		}
	}

	var cmd tea.Cmd
	m.token, cmd = m.token.Update(msg)
	return m, cmd
}

func (m *VerifyModel) View() string {
	var b strings.Builder
	b.WriteString("Paste the token from your verification email.\n\n")
	b.WriteString(fieldRow("Token", "["+m.token.View()+"]"))
	b.WriteString("\n")
	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)
	return renderPage("VERIFY EMAIL", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: verify")
}

func (m *VerifyModel) cmdVerify(token string) tea.Cmd {
	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		resp, err := account.VerifyEmail(ctx, token)
		return verifyDoneMsg{resp: resp, err: err}
	}
}
