// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

// NewNoteValidationService returns a wrapper that rejects malformed input
// before it reaches the wrapped NoteService.
func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *noteValidationService) ListNotes(ctx context.Context) ([]models.Note, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, ErrNoUserID
	}

	return v.inner.ListNotes(ctx)
}

func (v *noteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return models.Note{}, ErrNoUserID
	}

	if err := v.validator.Validate(ctx, note, validators.FieldName, validators.FieldDescription, validators.FieldImage); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, noteID string) (models.Note, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return models.Note{}, ErrNoUserID
	}

	if noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, models.Note{ID: noteID}, validators.FieldID); err != nil {
		return models.Note{}, fmt.Errorf("error during note id validation: %w", err)
	}

	return v.inner.DeleteNote(ctx, noteID)
}

func (v *noteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
