package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages aggregates the repositories built on one database pool.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to the configured database, applies the schema
// migrations and builds the repositories. Nothing is reachable before the
// schema exists.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("database schema is up to date")

	return newStoragesFromDB(db), nil
}

func newStoragesFromDB(db *DB) *Storages {
	return &Storages{
		NoteRepository: NewNoteRepository(db),
		db:             db,
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
