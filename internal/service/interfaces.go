// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// AuthService manages accounts and the JWT lifecycle on the server.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// RevokeToken rejects the token on every later ParseToken until it
	// expires.
	RevokeToken(ctx context.Context, token models.Token) error
}

// NoteService manages the notes of the user carried by ctx.
type NoteService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) (models.Note, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// BlobService stores objects under the caller's identity scope and hands out
// time-limited download URLs.
type BlobService interface {
	PutObject(ctx context.Context, objectPath string, r io.Reader) (models.ObjectReceipt, error)
	GetDownloadURL(ctx context.Context, objectPath string) (models.DownloadURL, error)

	// OpenSignedObject opens an object for an anonymous request carrying a
	// signature minted by GetDownloadURL.
	OpenSignedObject(ctx context.Context, objectPath string, expiresAt time.Time, signature string) (io.ReadSeekCloser, models.ObjectInfo, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
