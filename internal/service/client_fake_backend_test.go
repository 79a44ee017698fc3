// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	fakeIdentity = "0190c1a2-7f00-7000-8000-000000000001"
	fakeToken    = "token-1"
)

// fakeBackend is an in-memory server implementing adapter.ServerAdapter.
// Every remote call is counted so tests can assert on traffic.
type fakeBackend struct {
	mu sync.Mutex

	token  string
	nextID int
	notes  []models.Note
	blobs  map[string][]byte

	calls    map[string]int
	urlPaths []string

	// failures injected by tests
	listErr   error
	createErr error
	deleteErr error
	putErr    error
	logoutErr error
	urlErrs   map[string]error
}

var _ adapter.ServerAdapter = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		blobs:   make(map[string][]byte),
		calls:   make(map[string]int),
		urlErrs: make(map[string]error),
	}
}

func (b *fakeBackend) count(method string) {
	b.calls[method]++
}

// remoteCalls returns the number of calls made to the given methods.
func (b *fakeBackend) remoteCalls(methods ...string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, m := range methods {
		total += b.calls[m]
	}
	return total
}

func (b *fakeBackend) totalCalls() int {
	return b.remoteCalls("ListNotes", "CreateNote", "DeleteNote", "PutObject", "GetDownloadURL")
}

// seed stores notes as if they had been created earlier.
func (b *fakeBackend) seed(notes ...models.Note) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, n := range notes {
		b.nextID++
		if n.ID == "" {
			n.ID = fmt.Sprintf("note-%02d", b.nextID)
		}
		b.notes = append(b.notes, n)
	}
}

func (b *fakeBackend) stored() []models.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.notes)
}

func (b *fakeBackend) blob(objectPath string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.blobs[objectPath]
	return data, ok
}

func (b *fakeBackend) SetToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
}

func (b *fakeBackend) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

func (b *fakeBackend) Register(ctx context.Context, user models.User) (models.Session, error) {
	return b.Login(ctx, user)
}

func (b *fakeBackend) Login(_ context.Context, user models.User) (models.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("Login")
	b.token = fakeToken
	return models.Session{Login: user.Login, IdentityID: fakeIdentity, Token: fakeToken}, nil
}

func (b *fakeBackend) Logout(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("Logout")
	b.token = ""
	return b.logoutErr
}

func (b *fakeBackend) ListNotes(_ context.Context) ([]models.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("ListNotes")
	if b.listErr != nil {
		return nil, b.listErr
	}
	return slices.Clone(b.notes), nil
}

func (b *fakeBackend) CreateNote(_ context.Context, note models.Note) (models.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("CreateNote")
	if b.createErr != nil {
		return models.Note{}, b.createErr
	}

	b.nextID++
	note.ID = fmt.Sprintf("note-%02d", b.nextID)
	note.CreatedAt = time.Date(2026, 1, 1, 0, 0, b.nextID, 0, time.UTC)
	b.notes = append(b.notes, note)
	return note, nil
}

func (b *fakeBackend) DeleteNote(_ context.Context, id string) (models.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("DeleteNote")
	if b.deleteErr != nil {
		return models.Note{}, b.deleteErr
	}

	idx := slices.IndexFunc(b.notes, func(n models.Note) bool { return n.ID == id })
	if idx < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgNoteNotFound)
	}
	deleted := b.notes[idx]
	b.notes = slices.Delete(b.notes, idx, idx+1)
	return deleted, nil
}

func (b *fakeBackend) PutObject(_ context.Context, objectPath string, data []byte) (models.ObjectReceipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("PutObject")
	if b.putErr != nil {
		return models.ObjectReceipt{}, b.putErr
	}
	b.blobs[objectPath] = slices.Clone(data)
	return models.ObjectReceipt{Path: objectPath, Size: int64(len(data))}, nil
}

// GetDownloadURL signs any path, stored or not, like the real server.
func (b *fakeBackend) GetDownloadURL(_ context.Context, objectPath string) (models.DownloadURL, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count("GetDownloadURL")
	b.urlPaths = append(b.urlPaths, objectPath)
	if err, ok := b.urlErrs[objectPath]; ok {
		return models.DownloadURL{}, err
	}
	return models.DownloadURL{
		URL:       "http://blobs.test/api/storage/objects/" + objectPath + "?signature=sig",
		ExpiresAt: time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC),
	}, nil
}

func (b *fakeBackend) resolvedPaths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	paths := slices.Clone(b.urlPaths)
	slices.Sort(paths)
	return paths
}

func (b *fakeBackend) ServerVersion(_ context.Context) (string, error) {
	return "v1.0.0", nil
}
