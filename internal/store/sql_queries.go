package store

import (
	sq "github.com/Masterminds/squirrel"
)

const notesTable = "notes"

var noteColumns = []string{"id", "title", "content"}

const (
	returningNote = "RETURNING id, title, content"

	upsertNoteConflict = "ON CONFLICT (id) DO UPDATE SET title = excluded.title, content = excluded.content"

	// syncNotesIdentityPostgres moves the identity sequence of notes.id to
	// $1 unless it is already there or beyond. pg_sequence_last_value is
	// NULL for a sequence that has never been used.
	syncNotesIdentityPostgres = `SELECT setval(s.seq, $1)
		FROM (SELECT pg_get_serial_sequence('notes', 'id')::regclass AS seq) AS s
		WHERE $1 > COALESCE(pg_sequence_last_value(s.seq), 0);`
)

func buildSelectAllNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		OrderBy("id").
		ToSql()
}

func buildSelectNoteByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, title, content string) (string, []any, error) {
	return b.Insert(notesTable).
		Columns("title", "content").
		Values(title, content).
		Suffix(returningNote).
		ToSql()
}

func buildUpsertNoteQuery(b sq.StatementBuilderType, id int64, title, content string) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(id, title, content).
		Suffix(upsertNoteConflict + " " + returningNote).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
