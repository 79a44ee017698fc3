package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	auth     adapter.AuthClient
	sessions *SessionStore
	list     NoteListService
	refresh  ClientRefreshJob

	logger *logger.Logger
}

// NewClientAuthService creates the auth gate. On sign-out it stops refresh
// (may be nil) and clears list.
func NewClientAuthService(auth adapter.AuthClient, sessions *SessionStore, list NoteListService, refresh ClientRefreshJob, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		auth:     auth,
		sessions: sessions,
		list:     list,
		refresh:  refresh,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	return a.signIn(ctx, user, a.auth.Register)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	return a.signIn(ctx, user, a.auth.Login)
}

func (a *clientAuthService) signIn(
	ctx context.Context,
	user models.User,
	call func(context.Context, models.User) (models.Session, error),
) (models.Session, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		return models.Session{}, fmt.Errorf("%w: login and password are required", ErrInvalidDataProvided)
	}

	session, err := call(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.signIn").Str("login", user.Login).Msg("authentication failed")
		return models.Session{}, mapAdapterError(err)
	}

	// a previous user's notes must never leak into the new session
	a.list.Clear()
	a.sessions.Set(session)

	a.logger.Info().Str("login", session.Login).Msg("signed in")
	return session, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if a.refresh != nil {
		a.refresh.Stop()
	}

	err := a.auth.Logout(ctx)
	a.auth.SetToken("")
	a.sessions.Clear()
	a.list.Clear()

	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.SignOut").Msg("token revocation failed")
		return fmt.Errorf("sign out: %w", mapAdapterError(err))
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *clientAuthService) Session() (models.Session, bool) {
	return a.sessions.Get()
}
