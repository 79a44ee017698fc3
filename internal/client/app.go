package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
)

const signOutTimeout = 5 * time.Second

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	services   *service.ClientServices
	ui         UI
	background *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, background *workers.Workers, logger *logger.Logger) *App {
	return &App{
		services:   services,
		ui:         ui,
		background: background,
		logger:     logger,
	}
}

// Run blocks until the user quits or the process receives a termination
// signal. A user still signed in on exit is signed out.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.background.Stop()
	defer a.signOut()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}

func (a *App) signOut() {
	if _, ok := a.services.AuthService.Session(); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), signOutTimeout)
	defer cancel()

	if err := a.services.AuthService.SignOut(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.signOut").Msg("sign out on exit failed")
	}
}
