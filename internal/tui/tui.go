package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services   *service.ClientServices
	buildInfo  models.AppBuildInfo
	background workers.Worker
	noteLimit  int

	logger *logger.Logger
}

// New creates the terminal UI. background runs while a user is signed in.
func New(
	services *service.ClientServices,
	buildInfo models.AppBuildInfo,
	background workers.Worker,
	noteLimit int,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services:   services,
		buildInfo:  buildInfo,
		background: background,
		noteLimit:  noteLimit,
		logger:     logger,
	}
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
// It returns ErrUserQuit on Ctrl+C.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.pages(ctx), pageMenu, t.buildInfo, t.background)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("ui stopped by signal")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageNotes:    NewNotesModel(ctx, t.services, t.noteLimit),
		pageForm:     NewNoteFormModel(ctx, t.services.NoteForm),
	}
}
