package tui

// loadingView is shown while the guard is waiting for the session to boot.
func loadingView() string {
	return renderPage(appName, "Checking your session...", "")
}
