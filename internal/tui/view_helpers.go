package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderStatus renders the error line if set, else the status line.
func renderStatus(b *strings.Builder, status, errMsg string) {
	switch {
	case errMsg != "":
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	case status != "":
		b.WriteString("\n")
		b.WriteString(okStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func fieldRow(label, value string) string {
	return fmt.Sprintf("%-14s │ %s", label, value)
}

// digitsOnly strips typed or pasted runes down to the digits a code input
// accepts. Other messages pass through unchanged.
func digitsOnly(msg tea.Msg) tea.Msg {
	k, ok := msg.(tea.KeyMsg)
	if !ok || k.Type != tea.KeyRunes {
		return msg
	}
	k.Runes = []rune(models.SanitizeCode(string(k.Runes)))
	return k
}

// newCodeInput returns an input for a one-time code. The clipboard paste
// binding is off; text only arrives as key runes.
func newCodeInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "6-digit code"
	in.CharLimit = models.TOTPCodeLength
	in.Width = 10
	in.KeyMap.Paste.SetEnabled(false)
	return in
}

// updateCodeInput passes msg to a code input and leaves only digits in its
// value, whichever message put the text there.
func updateCodeInput(in textinput.Model, msg tea.Msg) (textinput.Model, tea.Cmd) {
	in, cmd := in.Update(digitsOnly(msg))
	if v := in.Value(); models.SanitizeCode(v) != v {
		in.SetValue(models.SanitizeCode(v))
	}
	return in, cmd
}
