package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository is the database/sql implementation of [NoteRepository].
// Queries are built with squirrel for the placeholder style of the
// connection's dialect.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures are traced with the request's trace_id.
type noteRepository struct {
	*DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB) NoteRepository {
	return &noteRepository{DB: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		id      int64
		title   sql.NullString
		content sql.NullString
	)
	if err := row.Scan(&id, &title, &content); err != nil {
		return models.Note{}, err
	}

	return models.Note{
		ID:      &id,
		Title:   title.String,
		Content: content.String,
	}, nil
}

// FindAll streams the notes table ordered by id. Rows are scanned one at a
// time and handed to the subscriber only when it asks for the next one.
func (r *noteRepository) FindAll(ctx context.Context) *async.Stream[models.Note] {
	log := logger.FromContext(ctx)

	return async.NewStream(func(ctx context.Context, emit async.Emit[models.Note]) error {
		query, args, err := buildSelectAllNotesQuery(r.builder())
		if err != nil {
			log.Err(err).Str("func", "noteRepository.FindAll").Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.FindAll").
				Stringer("classification", r.classify(err)).
				Msg("failed to execute query for getting all notes")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			note, scanErr := scanNote(rows)
			if scanErr != nil {
				log.Err(scanErr).Str("func", "noteRepository.FindAll").Msg("failed to scan note row")
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}

			if err := emit(note); err != nil {
				return err
			}
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			log.Err(rowsErr).
				Str("func", "noteRepository.FindAll").
				Stringer("classification", r.classify(rowsErr)).
				Msg("error occurred during rows iteration")
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
}

// FindByID looks a note up by its primary key.
func (r *noteRepository) FindByID(ctx context.Context, id int64) *async.Future[models.Note] {
	return async.Go(ctx, func(ctx context.Context) (models.Note, bool, error) {
		log := logger.FromContext(ctx)

		query, args, err := buildSelectNoteByIDQuery(r.builder(), id)
		if err != nil {
			log.Err(err).Str("func", "noteRepository.FindByID").Int64("id", id).Msg("failed to build query")
			return models.Note{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, false, nil
		}
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.FindByID").
				Int64("id", id).
				Stringer("classification", r.classify(err)).
				Msg("failed to find note")
			return models.Note{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return note, true, nil
	})
}

// Save inserts a note without an id and lets the database assign one. A note
// with an id is upserted: the row is updated when it exists and inserted
// with exactly that id otherwise.
func (r *noteRepository) Save(ctx context.Context, note models.Note) *async.Future[models.Note] {
	return async.Go(ctx, func(ctx context.Context) (models.Note, bool, error) {
		if note.IsNew() {
			saved, err := r.insert(ctx, note)
			return saved, err == nil, err
		}

		saved, err := r.upsert(ctx, note)
		return saved, err == nil, err
	})
}

func (r *noteRepository) insert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.builder(), note.Title, note.Content)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.insert").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.insert").
			Stringer("classification", r.classify(err)).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "noteRepository.insert").Int64("id", saved.IDValue()).Msg("note inserted")
	return saved, nil
}

func (r *noteRepository) upsert(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)
	id := note.IDValue()

	query, args, err := buildUpsertNoteQuery(r.builder(), id, note.Title, note.Content)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.upsert").Int64("id", id).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.upsert").
			Int64("id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to begin transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved, err := scanNote(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.upsert").
			Int64("id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to upsert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// keep generated ids ahead of ids written explicitly
	if r.dialect.syncIdentity != "" {
		if _, err = tx.ExecContext(ctx, r.dialect.syncIdentity, id); err != nil {
			log.Err(err).
				Str("func", "noteRepository.upsert").
				Int64("id", id).
				Stringer("classification", r.classify(err)).
				Msg("failed to sync notes identity")
			return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.upsert").
			Int64("id", id).
			Msg("failed to commit transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "noteRepository.upsert").Int64("id", id).Msg("note saved")
	return saved, nil
}

// DeleteByID removes the note with the given id. Deleting a missing note is
// not an error.
func (r *noteRepository) DeleteByID(ctx context.Context, id int64) *async.Future[struct{}] {
	return async.Go(ctx, func(ctx context.Context) (struct{}, bool, error) {
		log := logger.FromContext(ctx)

		query, args, err := buildDeleteNoteQuery(r.builder(), id)
		if err != nil {
			log.Err(err).Str("func", "noteRepository.DeleteByID").Int64("id", id).Msg("failed to build query")
			return struct{}{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.DeleteByID").
				Int64("id", id).
				Stringer("classification", r.classify(err)).
				Msg("failed to delete note")
			return struct{}{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if affected, affErr := res.RowsAffected(); affErr == nil {
			log.Debug().
				Str("func", "noteRepository.DeleteByID").
				Int64("id", id).
				Int64("rows_affected", affected).
				Msg("delete executed")
		}

		return struct{}{}, false, nil
	})
}
