// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-portal-client/models"
)

const appName = "Portal client"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(fieldRow("Application", appName))
	b.WriteString("\n")
	b.WriteString(fieldRow("Version", valueOrNA(info.BuildVersion())))
	b.WriteString("\n")
	b.WriteString(fieldRow("Date", valueOrNA(info.BuildDate())))
	b.WriteString("\n")
	b.WriteString(fieldRow("Commit", valueOrNA(info.BuildCommit())))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
