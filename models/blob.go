// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"path"
	"strings"
	"time"
)

// MediaPrefix is the top-level namespace of every stored object.
const MediaPrefix = "media"

// ErrInvalidObjectPath is returned when a path is not of the form
// media/{identityId}/{objectKey}.
var ErrInvalidObjectPath = errors.New("invalid object path")

// ObjectReceipt is returned by the object store after a successful upload.
type ObjectReceipt struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
}

// ObjectInfo describes a stored object when it is read back.
type ObjectInfo struct {
	Path        string
	Size        int64
	ContentType string
	ETag        string
	ModTime     time.Time
}

// DownloadURL is a time-limited URL for reading one object.
type DownloadURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DownloadURLRequest asks the server to sign a download URL for Path.
type DownloadURLRequest struct {
	Path string `json:"path" validate:"required,mediapath"`
}

// MediaPath builds the object path for key under the identity scope.
func MediaPath(identityID, key string) string {
	return MediaPrefix + "/" + identityID + "/" + key
}

// ParseMediaPath splits p into its identity scope and object key.
func ParseMediaPath(p string) (identityID, key string, err error) {
	if p == "" || p != path.Clean(p) || strings.HasPrefix(p, "/") {
		return "", "", ErrInvalidObjectPath
	}

	parts := strings.Split(p, "/")
	if len(parts) != 3 || parts[0] != MediaPrefix {
		return "", "", ErrInvalidObjectPath
	}

	identityID, key = parts[1], parts[2]
	if identityID == "" || key == "" || key == "." || key == ".." {
		return "", "", ErrInvalidObjectPath
	}

	return identityID, key, nil
}
