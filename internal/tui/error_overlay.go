package tui

// errorOverlayModel shows an error the router itself ran into, such as a
// failed boot.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
