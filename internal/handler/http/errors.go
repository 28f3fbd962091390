// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the note handlers. They are mapped to HTTP
// status codes by statusFromError.
var (
	// ErrNoteNotFound is returned by getNote when the store holds no note
	// with the requested id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidNoteID is returned when the {id} path segment is not a
	// base-10 64-bit integer.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrInvalidNoteBody is returned when the request body is empty, `null`
	// or not a JSON note.
	ErrInvalidNoteBody = errors.New("invalid note body")

	// ErrNoteNotSaved is returned when a save completes without a note.
	ErrNoteNotSaved = errors.New("note was not saved")
)
