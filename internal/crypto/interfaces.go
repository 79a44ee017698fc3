// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side primitives for password storage and
// download URL signing.
package crypto

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash returns the storable hash of password.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash and ErrPasswordMismatch
	// otherwise.
	Compare(hash, password string) error
}

// URLSigner issues and verifies time-limited signatures over object paths.
type URLSigner interface {
	// Sign returns the signature of objectPath valid until expiresAt.
	Sign(objectPath string, expiresAt time.Time) string

	// Verify checks the signature and the expiry. It returns
	// ErrSignatureExpired or ErrSignatureInvalid on failure.
	Verify(objectPath string, expiresAt time.Time, signature string) error
}
