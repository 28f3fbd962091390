package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/models"
)

const (
	focusTitle = iota
	focusContent
)

type formModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	editing    bool
	noteID     int64
	submitting bool
}

// newFormModel builds an empty form, or one prefilled from note when editing.
func newFormModel(note *models.Note) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Content"
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(10)

	m := formModel{title: title, content: content, focus: focusTitle}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.IDValue()
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	return m
}

func (m formModel) toNote() models.Note {
	note := models.Note{Title: m.title.Value(), Content: m.content.Value()}
	if m.editing {
		return note.WithID(m.noteID)
	}
	return note
}

func (m formModel) switchFocus() (formModel, tea.Cmd) {
	if m.focus == focusTitle {
		m.title.Blur()
		m.focus = focusContent
		return m, m.content.Focus()
	}
	m.content.Blur()
	m.focus = focusTitle
	return m, m.title.Focus()
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m formModel) View() string {
	title := "NEW NOTE"
	if m.editing {
		title = "EDIT NOTE"
	}

	body := "Title:\n" + m.title.View() + "\n\nContent:\n" + m.content.View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("Saving...")
	}

	return renderPage(title, body, "tab: next field  ctrl+s: save  esc: cancel")
}
