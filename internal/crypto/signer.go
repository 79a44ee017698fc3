// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type hmacURLSigner struct {
	key string
	now func() time.Time
}

// NewURLSigner returns an HMAC-SHA256 [URLSigner] keyed with key.
func NewURLSigner(key string) URLSigner {
	return &hmacURLSigner{key: key, now: time.Now}
}

// signedPayload binds the path and the unix expiry. The newline cannot
// appear in a valid object path.
func signedPayload(objectPath string, expiresAt time.Time) string {
	return objectPath + "\n" + strconv.FormatInt(expiresAt.Unix(), 10)
}

func (s *hmacURLSigner) Sign(objectPath string, expiresAt time.Time) string {
	return utils.HashString(signedPayload(objectPath, expiresAt), s.key)
}

func (s *hmacURLSigner) Verify(objectPath string, expiresAt time.Time, signature string) error {
	if !utils.EqualHex(s.Sign(objectPath, expiresAt), signature) {
		return ErrSignatureInvalid
	}

	if !s.now().Before(expiresAt) {
		return ErrSignatureExpired
	}

	return nil
}
