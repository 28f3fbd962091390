package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

const statusTTL = 2 * time.Second

var writeClipboard = clipboard.WriteAll

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type appModel struct {
	ctx           context.Context
	notes         adapter.NotesAdapter
	logger        *logger.Logger
	currentScreen screen

	list   listModel
	detail detailModel
	form   formModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
	buildInfo     buildInfoModel
}

func newAppModel(ctx context.Context, notes adapter.NotesAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		notes:         notes,
		logger:        log,
		currentScreen: screenList,
		list:          newListModel(),
		buildInfo:     buildInfoModel{build: buildInfo},
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteNote(m.confirm.noteID)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.setNotes(msg.notes)
		return m, nil
	case noteLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			if errors.Is(msg.err, adapter.ErrNotFound) {
				cmd := m.reload()
				return m, cmd
			}
			return m, nil
		}
		m.detail = detailModel{note: msg.note}
		m.currentScreen = screenDetail
		return m, nil
	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.detail = detailModel{note: msg.note, status: "Saved"}
		m.currentScreen = screenDetail
		cmd := m.reload()
		return m, tea.Batch(cmd, cmdClearStatus())
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.confirm = confirmModel{}
		m.currentScreen = screenList
		m.list.status = "Note deleted"
		cmd := m.reload()
		return m, tea.Batch(cmd, cmdClearStatus())
	case apiInfoLoadedMsg:
		m.buildInfo.loading = false
		if msg.err != nil {
			m.buildInfo.apiErr = msg.err
			return m, nil
		}
		m.buildInfo.apiErr = nil
		m.buildInfo.api = &msg.info
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.form.content.SetWidth(msg.Width - 8)
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(m.buildInfo.View())
	}

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.logger.Err(err).Str("func", "appModel.Update").Msg("notes request failed")
	m.showError = true
	m.errorOverlay.message = humanizeError(err)
}

func (m *appModel) reload() tea.Cmd {
	m.list.loading = true
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdGetNote(note.IDValue())
	case key.Matches(keyMsg, keys.newNote):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		cmd := m.reload()
		return m, cmd
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		if m.buildInfo.api != nil || m.buildInfo.loading {
			return m, nil
		}
		m.buildInfo.loading = true
		return m, m.cmdLoadAPIInfo()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail.status = ""
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.form = newFormModel(&note)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{noteID: m.detail.note.IDValue(), title: m.detail.note.Title}
	case key.Matches(keyMsg, keys.copy):
		if m.detail.note.Content == "" {
			m.detail.status = "Nothing to copy"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.detail.note.Content)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			var cmd tea.Cmd
			m.form, cmd = m.form.switchFocus()
			return m, cmd
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveNote(m.form.toNote(), m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	return func() tea.Msg {
		items, err := notes.List(ctx)
		return listLoadedMsg{notes: items, err: err}
	}
}

func (m appModel) cmdGetNote(id int64) tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	return func() tea.Msg {
		note, err := notes.Get(ctx, id)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m appModel) cmdSaveNote(note models.Note, editing bool) tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	return func() tea.Msg {
		var (
			saved models.Note
			err   error
		)
		if editing {
			saved, err = notes.Update(ctx, note.IDValue(), note)
		} else {
			saved, err = notes.Create(ctx, note)
		}
		return noteSavedMsg{note: saved, err: err}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	return func() tea.Msg {
		return noteDeletedMsg{err: notes.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadAPIInfo() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	return func() tea.Msg {
		info, err := notes.APIInfo(ctx)
		return apiInfoLoadedMsg{info: info, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
