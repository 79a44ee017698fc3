package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Services bundles the server-side services used by the handlers.
type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	notes := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(bcrypt.DefaultCost), cfg.App, logger),
		NoteService:    notes,
		BlobService:    NewBlobService(storages.ObjectStorage, crypto.NewURLSigner(cfg.App.URLSignKey), cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
