package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type ClientServices struct {
	Sessions    *SessionStore
	AuthService ClientAuthService
	NoteList    NoteListService
	NoteForm    NoteFormService
	RefreshJob  ClientRefreshJob
	AppInfo     ClientAppInfoService
}

// NewClientServices wires the client services around one server adapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	sessions := NewSessionStore()
	list := NewNoteListService(serverAdapter, serverAdapter, sessions, cfg.App.TolerateImageErrors, logger)
	refresh := NewClientRefreshJob(list, cfg.Workers.RefreshInterval, logger)

	return &ClientServices{
		Sessions:    sessions,
		AuthService: NewClientAuthService(serverAdapter, sessions, list, refresh, logger),
		NoteList:    list,
		NoteForm:    NewNoteFormService(serverAdapter, serverAdapter, list, sessions, cfg.App.NoteLimit, logger),
		RefreshJob:  refresh,
		AppInfo:     NewClientAppInfoService(serverAdapter, logger),
	}
}
