// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// listNotes streams every stored note as a JSON array. Elements are pulled
// from the service one at a time and flushed as they are encoded, so the
// store never runs ahead of the client.
//
// The status line is only committed after the first pull succeeds. A store
// failure after that point aborts the connection, leaving the client with a
// truncated body rather than a short but well-formed array.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	sub := h.services.NoteService.FindAll(ctx).Subscribe(ctx)
	defer sub.Close()

	note, ok, err := sub.Next(ctx)
	if err != nil {
		h.writeError(w, r, "*Handler.listNotes", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if !ok {
		w.Write([]byte("[]"))
		return
	}

	rc := http.NewResponseController(w)
	w.Write([]byte("["))
	for i := 0; ok; i++ {
		if i > 0 {
			w.Write([]byte(","))
		}
		data, err := json.Marshal(note)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listNotes").Msg("error encoding note")
			panic(http.ErrAbortHandler)
		}
		w.Write(data)
		// not every writer supports flushing; the body is still written
		_ = rc.Flush()

		note, ok, err = sub.Next(ctx)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listNotes").Msg("note stream failed after response started")
			panic(http.ErrAbortHandler)
		}
	}
	w.Write([]byte("]"))
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	ctx := r.Context()
	note, _, err := async.OrFail(h.services.NoteService.FindByID(ctx, id), ErrNoteNotFound).Await(ctx)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	h.writeNote(w, r, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	note, err := noteFromBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	ctx := r.Context()
	saved, _, err := async.OrFail(h.services.NoteService.Create(ctx, note), ErrNoteNotSaved).Await(ctx)
	if err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	h.writeNote(w, r, saved, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	note, err := noteFromBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	ctx := r.Context()
	saved, _, err := async.OrFail(h.services.NoteService.Update(ctx, id, note), ErrNoteNotSaved).Await(ctx)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	h.writeNote(w, r, saved, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	ctx := r.Context()
	if _, _, err = h.services.NoteService.DeleteByID(ctx, id).Await(ctx); err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func noteIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, raw)
	}
	return id, nil
}

func noteFromBody(r *http.Request) (models.Note, error) {
	var note *models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNoteBody, err)
	}
	if note == nil {
		return models.Note{}, fmt.Errorf("%w: body is null", ErrInvalidNoteBody)
	}
	return *note, nil
}

func (h *Handler) writeNote(w http.ResponseWriter, r *http.Request, note models.Note, status int) {
	if _, err := utils.WriteJSON(w, note, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeNote").Msg("error writing note")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, http.StatusText(status), status)
}
