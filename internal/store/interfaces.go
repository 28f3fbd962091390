package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/models"
)

// NoteRepository persists notes in the "notes" table.
//
// No method blocks the caller: each returns a deferred result whose work
// runs on its own goroutine and is cancelled together with the context it
// is awaited or subscribed with.
type NoteRepository interface {
	// FindAll returns a cold stream over all notes ordered by id. Every
	// subscription runs the query again.
	FindAll(ctx context.Context) *async.Stream[models.Note]
	// FindByID completes empty when no note has the given id.
	FindByID(ctx context.Context, id int64) *async.Future[models.Note]
	// Save inserts a note without an id and upserts one with an id. The
	// result is the note as stored.
	Save(ctx context.Context, note models.Note) *async.Future[models.Note]
	// DeleteByID completes empty whether or not the note existed.
	DeleteByID(ctx context.Context, id int64) *async.Future[struct{}]
}
