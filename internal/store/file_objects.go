// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sniffLen is how many leading bytes are kept for content type detection.
const sniffLen = 3072

// fileObjectStorage is the filesystem implementation of [ObjectStorage].
// Objects live at {root}/media/{identityId}/{key}.
type fileObjectStorage struct {
	root    string
	maxSize int64
	logger  *logger.Logger
}

// NewFileObjectStorage returns an [ObjectStorage] rooted at root. Objects
// larger than maxSize bytes are rejected; zero means unlimited.
func NewFileObjectStorage(root string, maxSize int64, logger *logger.Logger) (ObjectStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("error creating object storage root: %w", err)
	}

	logger.Debug().Str("root", root).Msg("creating file object storage")
	return &fileObjectStorage{root: root, maxSize: maxSize, logger: logger}, nil
}

// resolve maps a media path to a file path inside root.
func (s *fileObjectStorage) resolve(objectPath string) (string, error) {
	identityID, key, err := models.ParseMediaPath(objectPath)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.root, models.MediaPrefix, identityID, key), nil
}

func (s *fileObjectStorage) PutObject(ctx context.Context, objectPath string, r io.Reader) (models.ObjectReceipt, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.ObjectReceipt{}, err
	}

	target, err := s.resolve(objectPath)
	if err != nil {
		return models.ObjectReceipt{}, err
	}

	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, 0o750); err != nil {
		log.Err(err).Str("func", "*fileObjectStorage.PutObject").Msg("error creating object directory")
		return models.ObjectReceipt{}, fmt.Errorf("error creating object directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*fileObjectStorage.PutObject").Msg("error creating temp file")
		return models.ObjectReceipt{}, fmt.Errorf("error creating temp file: %w", err)
	}
	// no-op after a successful rename
	defer os.Remove(tmp.Name())

	hasher := sha256.New()
	head := &headBuffer{limit: sniffLen}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	size, err := io.Copy(io.MultiWriter(tmp, hasher, head), src)
	if err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*fileObjectStorage.PutObject").Msg("error writing object")
		return models.ObjectReceipt{}, fmt.Errorf("error writing object: %w", err)
	}

	if s.maxSize > 0 && size > s.maxSize {
		tmp.Close()
		return models.ObjectReceipt{}, ErrObjectTooLarge
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return models.ObjectReceipt{}, fmt.Errorf("error syncing object: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return models.ObjectReceipt{}, fmt.Errorf("error closing object: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		log.Err(err).Str("func", "*fileObjectStorage.PutObject").Msg("error publishing object")
		return models.ObjectReceipt{}, fmt.Errorf("error publishing object: %w", err)
	}

	receipt := models.ObjectReceipt{
		Path:        objectPath,
		Size:        size,
		ContentType: mimetype.Detect(head.Bytes()).String(),
		ETag:        hex.EncodeToString(hasher.Sum(nil)),
	}
	log.Debug().Str("path", objectPath).Int64("size", size).Str("content_type", receipt.ContentType).Msg("object stored")

	return receipt, nil
}

func (s *fileObjectStorage) OpenObject(ctx context.Context, objectPath string) (io.ReadSeekCloser, models.ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.ObjectInfo{}, err
	}

	target, err := s.resolve(objectPath)
	if err != nil {
		return nil, models.ObjectInfo{}, err
	}

	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.ObjectInfo{}, ErrObjectNotFound
	}
	if err != nil {
		return nil, models.ObjectInfo{}, fmt.Errorf("error opening object: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, models.ObjectInfo{}, fmt.Errorf("error reading object info: %w", err)
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, models.ObjectInfo{}, fmt.Errorf("error detecting content type: %w", err)
	}

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, models.ObjectInfo{}, fmt.Errorf("error rewinding object: %w", err)
	}

	return f, models.ObjectInfo{
		Path:        objectPath,
		Size:        stat.Size(),
		ContentType: mime.String(),
		ModTime:     stat.ModTime(),
	}, nil
}

func (s *fileObjectStorage) StatObject(ctx context.Context, objectPath string) (models.ObjectInfo, error) {
	f, info, err := s.OpenObject(ctx, objectPath)
	if err != nil {
		return models.ObjectInfo{}, err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err = io.Copy(hasher, f); err != nil {
		return models.ObjectInfo{}, fmt.Errorf("error hashing object: %w", err)
	}
	info.ETag = hex.EncodeToString(hasher.Sum(nil))

	return info, nil
}

// headBuffer keeps the first limit bytes written to it and discards the rest.
type headBuffer struct {
	buf   []byte
	limit int
}

func (h *headBuffer) Write(p []byte) (int, error) {
	if room := h.limit - len(h.buf); room > 0 {
		if len(p) < room {
			room = len(p)
		}
		h.buf = append(h.buf, p[:room]...)
	}
	return len(p), nil
}

func (h *headBuffer) Bytes() []byte {
	return h.buf
}
