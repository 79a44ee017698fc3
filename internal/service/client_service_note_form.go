package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteFormService struct {
	data      adapter.DataClient
	blobs     adapter.BlobClient
	list      NoteListService
	sessions  *SessionStore
	validator validators.Validator
	limit     int

	logger *logger.Logger
}

// NewNoteFormService creates the note form controller. limit caps the number
// of notes the visible list may reach through Create.
func NewNoteFormService(
	data adapter.DataClient,
	blobs adapter.BlobClient,
	list NoteListService,
	sessions *SessionStore,
	limit int,
	logger *logger.Logger,
) NoteFormService {
	return &noteFormService{
		data:      data,
		blobs:     blobs,
		list:      list,
		sessions:  sessions,
		validator: validators.NewNoteValidator(),
		limit:     limit,
		logger:    logger,
	}
}

func (f *noteFormService) Create(ctx context.Context, draft models.NoteDraft) error {
	// nothing below may reach the server before these checks pass
	if err := f.validateDraft(ctx, &draft); err != nil {
		return err
	}

	session, ok := f.sessions.Get()
	if !ok {
		return ErrNotAuthenticated
	}

	if f.list.Len() >= f.limit {
		return &NoteLimitError{Limit: f.limit}
	}

	created, err := f.data.CreateNote(ctx, draft.ToNote())
	if err != nil {
		f.logger.Err(err).Str("func", "noteFormService.Create").Msg("error creating note")
		return fmt.Errorf("create note: %w", mapAdapterError(err))
	}

	if draft.Image != nil && created.HasImage() {
		objectPath := models.MediaPath(session.IdentityID, created.Image)
		if _, err = f.blobs.PutObject(ctx, objectPath, draft.Image.Data); err != nil {
			return f.compensate(ctx, created, err)
		}
	}

	if _, err = f.list.FetchAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshAfterCreate, err)
	}

	return nil
}

// compensate undoes a create whose image upload failed, so no note points
// at an object that was never stored.
func (f *noteFormService) compensate(ctx context.Context, created models.Note, uploadErr error) error {
	log := f.logger.With().Str("func", "noteFormService.compensate").Str("note_id", created.ID).Logger()
	log.Err(uploadErr).Msg("image upload failed, deleting created note")

	result := fmt.Errorf("%w: %w", ErrImageUploadFailed, mapAdapterError(uploadErr))

	if _, err := f.data.DeleteNote(ctx, created.ID); err != nil {
		log.Err(err).Msg("compensating delete failed")
		result = errors.Join(result, fmt.Errorf("compensating delete of note %s: %w", created.ID, mapAdapterError(err)))
	}

	if _, err := f.list.FetchAll(ctx); err != nil {
		log.Err(err).Msg("refresh after compensation failed")
	}

	return result
}

func (f *noteFormService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty note id", ErrInvalidNote)
	}

	if _, ok := f.sessions.Get(); !ok {
		return ErrNotAuthenticated
	}

	if _, err := f.data.DeleteNote(ctx, id); err != nil {
		f.logger.Err(err).Str("func", "noteFormService.Delete").Str("note_id", id).Msg("error deleting note")
		return fmt.Errorf("delete note: %w", mapAdapterError(err))
	}

	if _, err := f.list.FetchAll(ctx); err != nil {
		return fmt.Errorf("refresh after delete: %w", err)
	}

	return nil
}

// validateDraft checks the text fields and reduces the picked file name to
// the base name that becomes the object key.
func (f *noteFormService) validateDraft(ctx context.Context, draft *models.NoteDraft) error {
	if err := f.validator.Validate(ctx, draft, validators.FieldName, validators.FieldDescription); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	if draft.Image == nil {
		return nil
	}

	image := *draft.Image
	image.FileName = filepath.Base(image.FileName)
	if !validators.IsValidObjectKey(image.FileName) {
		return fmt.Errorf("%w: invalid image file name %q", ErrInvalidNote, draft.Image.FileName)
	}
	if len(image.Data) == 0 {
		return fmt.Errorf("%w: image %q is empty", ErrInvalidNote, image.FileName)
	}
	draft.Image = &image

	return nil
}
