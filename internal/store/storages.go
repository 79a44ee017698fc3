// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles every persistence component the server services need.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	ObjectStorage  ObjectStorage

	db *DB
}

// NewStorages connects to the database, applies migrations and prepares the
// object store.
func NewStorages(ctx context.Context, cfg config.Storage, maxUploadSize int64, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	objects, err := NewFileObjectStorage(cfg.Files.BinaryDataDir, maxUploadSize, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		ObjectStorage:  objects,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
