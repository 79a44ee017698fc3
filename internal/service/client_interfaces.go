package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=ClientRefreshJob

// ClientAuthService is the auth gate of the terminal client. The notes screen
// is reachable only while Session reports a signed-in user.
type ClientAuthService interface {
	// Register creates an account and signs the user in with it.
	// Returns ErrLoginTaken when the login is already in use.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates the user and stores the session for the other
	// client services. Returns ErrBadCredentials on a wrong login/password.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// SignOut revokes the token on the server, then clears the adapter token,
	// the held session and the held note list. Local state is cleared even
	// when the server call fails; that failure is still returned.
	SignOut(ctx context.Context) error

	// Session returns the current session and whether someone is signed in.
	Session() (models.Session, bool)
}

// NoteListService is the view-model of the notes screen. It owns the single
// in-memory list of resolved notes.
type NoteListService interface {
	// FetchAll loads every note of the signed-in user in server order and
	// rewrites each image key to a time-limited download URL. On success the
	// held list is replaced wholesale; on failure it is left untouched.
	FetchAll(ctx context.Context) ([]models.Note, error)

	// Notes returns a copy of the held list.
	Notes() []models.Note

	// Len returns the number of held notes.
	Len() int

	// Clear drops the held list.
	Clear()
}

// NoteFormService creates and deletes notes. Every successful mutation is
// followed by a full FetchAll.
type NoteFormService interface {
	// Create validates the draft, enforces the note cap, creates the record,
	// uploads the image when one was picked and refetches the list.
	Create(ctx context.Context, draft models.NoteDraft) error

	// Delete removes the note with the given id and refetches the list. The
	// note's image object is kept.
	Delete(ctx context.Context, id string) error
}

// ClientAppInfoService reports the version of the server the client talks to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}

// ClientRefreshJob periodically refetches the note list so download URLs are
// re-minted before they expire.
type ClientRefreshJob interface {
	// Start launches the background refresh. Any previously running refresh
	// is stopped first.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Updates delivers the outcome of every background refresh. Only the
	// latest result is buffered.
	Updates() <-chan RefreshResult
}

// RefreshResult is the outcome of one background refresh.
type RefreshResult struct {
	Notes []models.Note
	Err   error
}
