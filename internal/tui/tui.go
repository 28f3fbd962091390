// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

var errNoNotesAdapter = errors.New("notes adapter is required")

// TUI is the interactive terminal client of the notes server.
type TUI struct {
	notes     adapter.NotesAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

// New creates a TUI that talks to the server through notes.
func New(notes adapter.NotesAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if notes == nil {
		return nil, errNoNotesAdapter
	}
	return &TUI{
		notes:     notes,
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run shows the notes list and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.notes, t.buildInfo, t.logger)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	_, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
