// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Note is a single user note owned by one account.
//
// At rest Image holds the object key (the base name of the uploaded file),
// never a URL. The client rewrites it in memory to a time-limited download
// URL after every fetch; that rewritten form is never sent back.
type Note struct {
	// ID is assigned by the server on create (UUID v7).
	ID string `json:"id" validate:"omitempty,uuid"`

	// OwnerID is the internal id of the owning user. Server-side only.
	OwnerID int64 `json:"-"`

	// Name is the note title. Required.
	Name string `json:"name" validate:"required,notblank,max=255"`

	// Description is the note body. Required.
	Description string `json:"description" validate:"required,notblank,max=4096"`

	// Image is an optional object key, or a resolved URL on the client.
	Image string `json:"image,omitempty" validate:"omitempty,objectkey"`

	// CreatedAt is set by the server.
	CreatedAt time.Time `json:"created_at"`
}

// HasImage reports whether the note references an image.
func (n Note) HasImage() bool {
	return strings.TrimSpace(n.Image) != ""
}

// TableName returns the name of the database table backing notes.
func (n Note) TableName() string {
	return "notes"
}

// NoteRequest is the body of a create request: the only fields a client may
// set. The server rejects any other field.
type NoteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// NewNoteRequest takes the client-settable fields of n.
func NewNoteRequest(n Note) NoteRequest {
	return NoteRequest{Name: n.Name, Description: n.Description, Image: n.Image}
}

// ToNote converts the request to a note without server-assigned fields.
func (r NoteRequest) ToNote() Note {
	return Note{Name: r.Name, Description: r.Description, Image: r.Image}
}

// ImageFile is an image picked in the note form.
type ImageFile struct {
	// FileName is the base name of the picked file; it becomes the object key.
	FileName string `validate:"required,objectkey"`
	// Data is the raw file content.
	Data []byte `validate:"required,min=1"`
}

// NoteDraft is the input of the note form before it reaches the server.
type NoteDraft struct {
	Name        string     `validate:"required,notblank,max=255"`
	Description string     `validate:"required,notblank,max=4096"`
	Image       *ImageFile
}

// ToNote converts the draft to the record sent to the server. Only the
// file's base name is stored, never its bytes.
func (d NoteDraft) ToNote() Note {
	note := Note{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
	}
	if d.Image != nil {
		note.Image = d.Image.FileName
	}
	return note
}
