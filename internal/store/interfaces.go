// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set.
	// A taken login yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns ErrUserNotFound when no account matches.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository persists notes. Every method is restricted to one owner.
type NoteRepository interface {
	// ListNotes returns the owner's notes ordered by creation time, then id.
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// CreateNote inserts a fully populated note.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the owner's note and returns it. A missing note or
	// one owned by somebody else yields ErrNoteNotFound.
	DeleteNote(ctx context.Context, ownerID int64, noteID string) (models.Note, error)
}

// ObjectStorage keeps uploaded objects addressed by media paths.
type ObjectStorage interface {
	// PutObject stores the content of r under objectPath, replacing any
	// previous object atomically.
	PutObject(ctx context.Context, objectPath string, r io.Reader) (models.ObjectReceipt, error)

	// OpenObject opens a stored object for reading. The caller closes it.
	OpenObject(ctx context.Context, objectPath string) (io.ReadSeekCloser, models.ObjectInfo, error)

	// StatObject describes a stored object without opening it for the caller.
	StatObject(ctx context.Context, objectPath string) (models.ObjectInfo, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
