package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func (m detailModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:    %d\n", m.note.IDValue())
	fmt.Fprintf(&b, "Title: %s\n\n", valueOrDash(m.note.Title))
	b.WriteString(valueOrDash(m.note.Content))

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	return renderPage("NOTE", b.String(), "e: edit  d: delete  c: copy content  esc: back")
}
