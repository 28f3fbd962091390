package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// noteService passes every call to the note repository. Results are returned
// as produced by the store.
type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	logger.Debug().Msg("creating note service")
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) FindAll(ctx context.Context) *async.Stream[models.Note] {
	return s.noteRepository.FindAll(ctx)
}

func (s *noteService) FindByID(ctx context.Context, id int64) *async.Future[models.Note] {
	return s.noteRepository.FindByID(ctx, id)
}

func (s *noteService) Save(ctx context.Context, note models.Note) *async.Future[models.Note] {
	return s.noteRepository.Save(ctx, note)
}

func (s *noteService) DeleteByID(ctx context.Context, id int64) *async.Future[struct{}] {
	return s.noteRepository.DeleteByID(ctx, id)
}

func (s *noteService) Create(ctx context.Context, note models.Note) *async.Future[models.Note] {
	return s.Save(ctx, note.WithoutID())
}

func (s *noteService) Update(ctx context.Context, id int64, note models.Note) *async.Future[models.Note] {
	return s.Save(ctx, note.WithID(id))
}
