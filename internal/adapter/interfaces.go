// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the notes HTTP API.
//
// [NotesAdapter] hides the transport from the terminal client. Non-2xx
// responses are mapped to the sentinel errors in errors.go so callers can
// branch with [errors.Is], e.g. [ErrNotFound] for a note deleted elsewhere.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesAdapter talks to a running notes server.
type NotesAdapter interface {
	// List returns every note in id order.
	List(ctx context.Context) ([]models.Note, error)

	// Get returns the note with id, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Note, error)

	// Create stores a new note. Any id on note is ignored by the server.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update stores note under id, creating it when the server has no such
	// note.
	Update(ctx context.Context, id int64, note models.Note) (models.Note, error)

	// Delete removes the note with id. Deleting a missing note succeeds.
	Delete(ctx context.Context, id int64) error

	// APIInfo returns the server's API metadata.
	APIInfo(ctx context.Context) (models.APIInfo, error)
}
