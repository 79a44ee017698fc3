// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
)

type nopReadSeekCloser struct {
	io.ReadSeeker
}

func (nopReadSeekCloser) Close() error { return nil }

func newTestBlobService(t *testing.T) (*blobService, *mock.MockObjectStorage) {
	t.Helper()
	objects := mock.NewMockObjectStorage(gomock.NewController(t))
	svc := NewBlobService(objects, crypto.NewURLSigner("url-key"), testAppConfig, logger.Nop()).(*blobService)
	return svc, objects
}

// ── PutObject ─────────────────────────────────────────────────────────────────

func TestBlobService_PutObject_OwnScope(t *testing.T) {
	svc, objects := newTestBlobService(t)
	path := models.MediaPath("identity-7", "photo.png")

	objects.EXPECT().PutObject(gomock.Any(), path, gomock.Any()).
		Return(models.ObjectReceipt{Path: path, Size: 3}, nil)

	receipt, err := svc.PutObject(principalCtx(), path, bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, path, receipt.Path)
}

func TestBlobService_PutObject_Rejected(t *testing.T) {
	svc, _ := newTestBlobService(t)

	_, err := svc.PutObject(principalCtx(), models.MediaPath("someone-else", "photo.png"), strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.PutObject(principalCtx(), "media/identity-7/../x", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, models.ErrInvalidObjectPath)

	_, err = svc.PutObject(context.Background(), models.MediaPath("identity-7", "photo.png"), strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNoUserID)
}

// ── GetDownloadURL ────────────────────────────────────────────────────────────

func TestBlobService_GetDownloadURL(t *testing.T) {
	svc, _ := newTestBlobService(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	path := models.MediaPath("identity-7", "my photo.png")
	link, err := svc.GetDownloadURL(principalCtx(), path)
	require.NoError(t, err)

	assert.Equal(t, now.Add(testAppConfig.URLTTL), link.ExpiresAt)

	parsed, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, ObjectsRoute+path, parsed.Path)
	assert.Contains(t, link.URL, "my%20photo.png")
	assert.NotEqual(t, "my photo.png", link.URL)

	expires, err := strconv.ParseInt(parsed.Query().Get(QueryExpires), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, link.ExpiresAt.Unix(), expires)
	assert.NotEmpty(t, parsed.Query().Get(QuerySignature))
}

func TestBlobService_GetDownloadURL_ForeignIdentity(t *testing.T) {
	svc, _ := newTestBlobService(t)

	_, err := svc.GetDownloadURL(principalCtx(), models.MediaPath("identity-8", "photo.png"))
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── OpenSignedObject ──────────────────────────────────────────────────────────

func TestBlobService_OpenSignedObject(t *testing.T) {
	svc, objects := newTestBlobService(t)
	path := models.MediaPath("identity-7", "photo.png")

	link, err := svc.GetDownloadURL(principalCtx(), path)
	require.NoError(t, err)
	parsed, err := url.Parse(link.URL)
	require.NoError(t, err)
	signature := parsed.Query().Get(QuerySignature)

	objects.EXPECT().OpenObject(gomock.Any(), path).
		Return(nopReadSeekCloser{bytes.NewReader([]byte("png"))}, models.ObjectInfo{Path: path, Size: 3}, nil)

	f, info, err := svc.OpenSignedObject(context.Background(), path, link.ExpiresAt, signature)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(3), info.Size)

	// the signature is bound to the path and the expiry
	_, _, err = svc.OpenSignedObject(context.Background(), models.MediaPath("identity-7", "other.png"), link.ExpiresAt, signature)
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = svc.OpenSignedObject(context.Background(), path, link.ExpiresAt.Add(time.Hour), signature)
	assert.ErrorIs(t, err, crypto.ErrSignatureInvalid)
}

func TestBlobService_OpenSignedObject_Expired(t *testing.T) {
	svc, _ := newTestBlobService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	path := models.MediaPath("identity-7", "photo.png")

	link, err := svc.GetDownloadURL(principalCtx(), path)
	require.NoError(t, err)
	parsed, err := url.Parse(link.URL)
	require.NoError(t, err)

	_, _, err = svc.OpenSignedObject(context.Background(), path, link.ExpiresAt, parsed.Query().Get(QuerySignature))
	assert.ErrorIs(t, err, crypto.ErrSignatureExpired)
}
