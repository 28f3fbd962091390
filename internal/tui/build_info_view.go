// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

type buildInfoModel struct {
	build   models.AppBuildInfo
	api     *models.APIInfo
	apiErr  error
	loading bool
}

func (m buildInfoModel) View() string {
	var b strings.Builder

	b.WriteString("Application: go-notes client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(m.build.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(m.build.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(m.build.BuildCommit()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Server: loading...")
	case m.apiErr != nil:
		b.WriteString("Server: ")
		b.WriteString(humanizeError(m.apiErr))
	case m.api != nil:
		b.WriteString("Server: ")
		b.WriteString(valueOrNA(m.api.Title))
		b.WriteString(" ")
		b.WriteString(valueOrNA(m.api.Version))
		b.WriteString("\n")
		b.WriteString(m.api.Description)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
