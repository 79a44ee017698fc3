// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-note-keeper server.
//
// The client sees the server as three capabilities: [AuthClient] for
// accounts and the bearer token, [DataClient] for note records and
// [BlobClient] for image objects. [ServerAdapter] bundles them; the package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthClient manages the account session against the server.
type AuthClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken and the session is returned.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates with login and password. On success the returned
	// bearer token is stored via SetToken and the session is returned.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Logout revokes the current token on the server and forgets it locally.
	// The local token is cleared even when the server call fails.
	Logout(ctx context.Context) error
}

// DataClient reads and writes the note records of the signed-in user.
type DataClient interface {
	// ListNotes returns every note of the user in the server's order.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote sends name, description and image key and returns the
	// stored record with its server-assigned id.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the note and returns the deleted record.
	DeleteNote(ctx context.Context, id string) (models.Note, error)
}

// BlobClient stores image objects and resolves them to download URLs.
type BlobClient interface {
	// PutObject uploads data under objectPath (media/{identityId}/{key}).
	PutObject(ctx context.Context, objectPath string, data []byte) (models.ObjectReceipt, error)

	// GetDownloadURL returns an absolute, time-limited URL for objectPath.
	GetDownloadURL(ctx context.Context, objectPath string) (models.DownloadURL, error)
}

// ServerAdapter defines transport-agnostic communication with the
// go-note-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	AuthClient
	DataClient
	BlobClient

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
