package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// NoteLoggingService logs the outcome of every NoteService call once its
// deferred result is known. It never changes a result.
type NoteLoggingService struct {
	inner NoteService
}

func NewNoteLoggingService() NoteServiceWrapper {
	return &NoteLoggingService{}
}

func (s *NoteLoggingService) Wrap(inner NoteService) NoteService {
	s.inner = inner
	return s
}

func (s *NoteLoggingService) FindAll(ctx context.Context) *async.Stream[models.Note] {
	inner := s.inner.FindAll(ctx)
	log := logger.FromContext(ctx)

	return async.NewStream(func(ctx context.Context, emit async.Emit[models.Note]) error {
		start := time.Now()
		count := 0

		for note, err := range inner.All(ctx) {
			if err != nil {
				log.Err(err).
					Str("func", "NoteService.FindAll").
					Int("emitted", count).
					Dur("duration", time.Since(start)).
					Msg("listing notes failed")
				return err
			}
			if err := emit(note); err != nil {
				return err
			}
			count++
		}

		log.Debug().
			Str("func", "NoteService.FindAll").
			Int("emitted", count).
			Dur("duration", time.Since(start)).
			Msg("notes listed")
		return nil
	})
}

func (s *NoteLoggingService) FindByID(ctx context.Context, id int64) *async.Future[models.Note] {
	return observe(ctx, s.inner.FindByID(ctx, id), "NoteService.FindByID", func(e *zerolog.Event) {
		e.Int64("id", id)
	})
}

func (s *NoteLoggingService) Save(ctx context.Context, note models.Note) *async.Future[models.Note] {
	return observe(ctx, s.inner.Save(ctx, note), "NoteService.Save", func(e *zerolog.Event) {
		e.Bool("new", note.IsNew())
	})
}

func (s *NoteLoggingService) DeleteByID(ctx context.Context, id int64) *async.Future[struct{}] {
	return observe(ctx, s.inner.DeleteByID(ctx, id), "NoteService.DeleteByID", func(e *zerolog.Event) {
		e.Int64("id", id)
	})
}

func (s *NoteLoggingService) Create(ctx context.Context, note models.Note) *async.Future[models.Note] {
	return observe(ctx, s.inner.Create(ctx, note), "NoteService.Create", func(*zerolog.Event) {})
}

func (s *NoteLoggingService) Update(ctx context.Context, id int64, note models.Note) *async.Future[models.Note] {
	return observe(ctx, s.inner.Update(ctx, id, note), "NoteService.Update", func(e *zerolog.Event) {
		e.Int64("id", id)
	})
}

// observe returns a Future resolving exactly like f and logs its outcome
// under funcName. fields adds call specific fields to the log entry.
func observe[T any](ctx context.Context, f *async.Future[T], funcName string, fields func(e *zerolog.Event)) *async.Future[T] {
	log := logger.FromContext(ctx)
	start := time.Now()

	return async.Go(ctx, func(ctx context.Context) (T, bool, error) {
		v, ok, err := f.Await(ctx)

		var event *zerolog.Event
		if err != nil {
			event = log.Err(err)
		} else {
			event = log.Debug()
		}
		fields(event)
		event.
			Str("func", funcName).
			Bool("found", ok).
			Dur("duration", time.Since(start)).
			Msg("note service call completed")

		return v, ok, err
	})
}
