// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	ids            *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

// NewNoteService returns a [NoteService] over repo. The owner of every call
// is taken from the principal stored in ctx by the auth middleware.
func NewNoteService(repo store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: repo,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoUserID
	}

	return s.noteRepository.ListNotes(ctx, ownerID)
}

// CreateNote assigns the id, owner and creation time, then stores the note.
// Any id sent by the client is discarded.
func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Note{}, ErrNoUserID
	}

	note.ID = s.ids.Generate()
	note.OwnerID = ownerID
	// postgres keeps microseconds
	note.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.CreateNote").Msg("error creating note")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	return created, nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteID string) (models.Note, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.Note{}, ErrNoUserID
	}

	return s.noteRepository.DeleteNote(ctx, ownerID, noteID)
}
