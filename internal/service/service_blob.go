// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ObjectsRoute is the HTTP prefix under which signed objects are served.
const ObjectsRoute = "/api/storage/objects/"

// Query parameters of a signed download URL.
const (
	QueryExpires   = "expires"
	QuerySignature = "signature"
)

type blobService struct {
	objects store.ObjectStorage
	signer  crypto.URLSigner
	urlTTL  time.Duration
	now     func() time.Time

	logger *logger.Logger
}

// NewBlobService returns a [BlobService] over objects. Download URLs are
// signed by signer and live for cfg.URLTTL.
func NewBlobService(objects store.ObjectStorage, signer crypto.URLSigner, cfg config.App, logger *logger.Logger) BlobService {
	return &blobService{
		objects: objects,
		signer:  signer,
		urlTTL:  cfg.URLTTL,
		now:     time.Now,
		logger:  logger,
	}
}

// checkScope makes sure objectPath is well formed and belongs to the
// identity carried by ctx.
func checkScope(ctx context.Context, objectPath string) error {
	callerIdentity, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		return ErrNoUserID
	}

	identityID, _, err := models.ParseMediaPath(objectPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if identityID != callerIdentity {
		return ErrForbidden
	}

	return nil
}

func (s *blobService) PutObject(ctx context.Context, objectPath string, r io.Reader) (models.ObjectReceipt, error) {
	if err := checkScope(ctx, objectPath); err != nil {
		return models.ObjectReceipt{}, err
	}

	receipt, err := s.objects.PutObject(ctx, objectPath, r)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blobService.PutObject").Str("path", objectPath).Msg("error storing object")
		return models.ObjectReceipt{}, fmt.Errorf("error storing object: %w", err)
	}

	return receipt, nil
}

// GetDownloadURL signs a relative URL for objectPath. The object is not
// required to exist; a missing object surfaces when the URL is followed.
func (s *blobService) GetDownloadURL(ctx context.Context, objectPath string) (models.DownloadURL, error) {
	if err := checkScope(ctx, objectPath); err != nil {
		return models.DownloadURL{}, err
	}

	// signatures carry unix seconds
	expiresAt := s.now().Add(s.urlTTL).Truncate(time.Second).UTC()

	query := url.Values{}
	query.Set(QueryExpires, strconv.FormatInt(expiresAt.Unix(), 10))
	query.Set(QuerySignature, s.signer.Sign(objectPath, expiresAt))

	return models.DownloadURL{
		URL:       ObjectsRoute + escapePath(objectPath) + "?" + query.Encode(),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *blobService) OpenSignedObject(ctx context.Context, objectPath string, expiresAt time.Time, signature string) (io.ReadSeekCloser, models.ObjectInfo, error) {
	if err := s.signer.Verify(objectPath, expiresAt, signature); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("path", objectPath).Msg("rejected download signature")
		return nil, models.ObjectInfo{}, fmt.Errorf("%w: %w", ErrForbidden, err)
	}

	return s.objects.OpenObject(ctx, objectPath)
}

func escapePath(objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
