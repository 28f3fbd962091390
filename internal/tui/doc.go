// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the bubbletea terminal client of the notes server.
//
// The client lists notes, opens a single note, creates and edits notes in a
// two-field form, deletes notes after confirmation and copies note content
// to the system clipboard. Every action is a tea.Cmd calling
// [adapter.NotesAdapter], so the UI never blocks on the network.
package tui
