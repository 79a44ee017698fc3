package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteListService struct {
	data     adapter.DataClient
	images   *imageResolver
	sessions *SessionStore

	// mu guards notes. Overlapping fetches are not serialised: the last one
	// to finish wins.
	mu    sync.RWMutex
	notes []models.Note

	logger *logger.Logger
}

// NewNoteListService creates the notes view-model. With lenient set, notes
// whose image cannot be resolved are kept with an empty image instead of
// failing the fetch.
func NewNoteListService(data adapter.DataClient, blobs adapter.BlobClient, sessions *SessionStore, lenient bool, logger *logger.Logger) NoteListService {
	return &noteListService{
		data:     data,
		images:   newImageResolver(blobs, lenient, logger),
		sessions: sessions,
		notes:    []models.Note{},
		logger:   logger,
	}
}

func (l *noteListService) FetchAll(ctx context.Context) ([]models.Note, error) {
	session, ok := l.sessions.Get()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	notes, err := l.data.ListNotes(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "noteListService.FetchAll").Msg("error listing notes")
		return nil, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}

	resolved, err := l.images.Resolve(ctx, session.IdentityID, notes)
	if err != nil {
		l.logger.Err(err).Str("func", "noteListService.FetchAll").Msg("error resolving images")
		return nil, err
	}

	l.mu.Lock()
	l.notes = resolved
	l.mu.Unlock()

	return slices.Clone(resolved), nil
}

func (l *noteListService) Notes() []models.Note {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.notes)
}

func (l *noteListService) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.notes)
}

func (l *noteListService) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notes = []models.Note{}
}
