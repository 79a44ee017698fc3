package tui

import (
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageNotes    = "notes"
	pageForm     = "form"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the register page. A successful registration
// also signs the user in.
type RegisterResult struct {
	Session models.Session
	Err     error
}

// SignedOutNotice is shown on the menu after a sign-out.
type SignedOutNotice struct {
	Login string
	Err   error
}

type signedOutMsg struct {
	login string
	err   error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type refreshMsg struct {
	result service.RefreshResult
}

type noteCreatedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

// showNotesMsg returns to the notes page without a fetch.
type showNotesMsg struct {
	status string
	// refetch reloads the list from the server instead of the cache.
	refetch bool
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
