// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notesRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/notes/", h.listNotes)
	r.Post("/api/notes/", h.createNote)
	r.Delete("/api/notes/{id}", h.deleteNote)
	return r
}

// ── listNotes ────────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	h, m := newMockedHandler(t, "")
	notes := []models.Note{
		{ID: "n1", Name: "Trip", Description: "Beach day", Image: "photo.png"},
		{ID: "n2", Name: "List", Description: "Milk"},
	}
	m.notes.EXPECT().ListNotes(gomock.Any()).Return(notes, nil)

	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notes/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, notes, got)
}

func TestListNotes_Empty(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.notes.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{}, nil)

	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notes/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListNotes_NoUser(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.notes.EXPECT().ListNotes(gomock.Any()).Return(nil, service.ErrNoUserID)

	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notes/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgNoUserIDProvided, decodeError(t, rr))
}

// ── createNote ───────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	h, m := newMockedHandler(t, "")
	created := models.Note{ID: "n1", Name: "Trip", Description: "Beach day", Image: "photo.png"}

	m.notes.EXPECT().CreateNote(gomock.Any(), models.Note{
		Name:        "Trip",
		Description: "Beach day",
		Image:       "photo.png",
	}).Return(created, nil)

	body := `{"name":"Trip","description":"Beach day","image":"photo.png"}`
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/notes/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestCreateNote_ClientCannotChooseID(t *testing.T) {
	h, _ := newMockedHandler(t, "")

	body := `{"id":"mine","name":"Trip","description":"Beach day"}`
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/notes/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rr))
}

func TestCreateNote_AcceptsClientRequestBody(t *testing.T) {
	tests := []struct {
		name string
		note models.Note
	}{
		{
			name: "with image",
			note: models.Note{ID: "local", Name: "Trip", Description: "Beach day", Image: "photo.png", CreatedAt: time.Now()},
		},
		{
			name: "without image",
			note: models.Note{Name: "List", Description: "Milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, "")
			want := models.Note{Name: tt.note.Name, Description: tt.note.Description, Image: tt.note.Image}
			m.notes.EXPECT().CreateNote(gomock.Any(), want).Return(models.Note{ID: "n1"}, nil)

			// Same encoding the client adapter puts on the wire.
			body, err := json.Marshal(models.NewNoteRequest(tt.note))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader(body)))

			assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		})
	}
}

func TestCreateNote_ValidationMessageExposed(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("create note: %w: name is required", validators.ErrValidation))

	body := `{"name":"","description":"Beach day"}`
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/notes/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "validation failed: name is required", decodeError(t, rr))
}

func TestCreateNote_InternalError(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, errors.New("disk full"))

	body := `{"name":"Trip","description":"Beach day"}`
	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/notes/", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rr))
	assert.NotContains(t, rr.Body.String(), "disk full")
}

// ── deleteNote ───────────────────────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	h, m := newMockedHandler(t, "")
	deleted := models.Note{ID: "n1", Name: "Trip", Description: "Beach day", Image: "photo.png"}
	m.notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(deleted, nil)

	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/notes/n1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, deleted, got)
}

func TestDeleteNote_NotFound(t *testing.T) {
	h, m := newMockedHandler(t, "")
	m.notes.EXPECT().DeleteNote(gomock.Any(), "missing").
		Return(models.Note{}, fmt.Errorf("delete note: %w", store.ErrNoteNotFound))

	rr := httptest.NewRecorder()
	notesRouter(h).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/notes/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNoteNotFound, decodeError(t, rr))
}
