package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-notes/models"
)

const listTitleWidth = 48

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// setNotes replaces the list contents and keeps the cursor in range.
func (m *listModel) setNotes(notes []models.Note) {
	m.notes = notes
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	title := "NOTES"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.notes) == 0:
		b.WriteString("Loading...")
	case len(m.notes) == 0:
		b.WriteString("No notes yet")
	default:
		for i, note := range m.notes {
			line := fmt.Sprintf("#%-4d %s", note.IDValue(), fitText(valueOrDash(firstLine(note.Title)), listTitleWidth))
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage(title, b.String(), "enter: open  n: new  r: reload  v: about  q: quit")
}
