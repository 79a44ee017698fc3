// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-keeper/models"
)

var noteColumns = []string{"id", "user_id", "name", "description", "image", "created_at"}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("identity_id", "login", "password_hash", "created_at").
		Values(user.IdentityID, user.Login, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("user_id", "identity_id", "login", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildListNotesQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert("notes").
		Columns(noteColumns...).
		Values(note.ID, note.OwnerID, note.Name, note.Description, nullString(note.Image), note.CreatedAt).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, ownerID int64, noteID string) (string, []any, error) {
	return b.Delete("notes").
		Where(sq.Eq{"id": noteID, "user_id": ownerID}).
		Suffix("RETURNING id, user_id, name, description, image, created_at").
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note  models.Note
		image sql.NullString
	)

	var createdAt dbTime
	if err := row.Scan(&note.ID, &note.OwnerID, &note.Name, &note.Description, &image, &createdAt); err != nil {
		return models.Note{}, err
	}
	note.Image = image.String
	note.CreatedAt = time.Time(createdAt)

	return note, nil
}

// dbTime scans timestamps from drivers that hand them back either as
// time.Time or as text (SQLite without a declared column type).
type dbTime time.Time

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = dbTime(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		*t = dbTime(time.Time{})
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = dbTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}
