// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoUserID is returned when ctx carries no authenticated principal.
	ErrNoUserID = errors.New("no authenticated user in context")

	// ErrForbidden is returned when an object path lies outside the
	// caller's identity scope.
	ErrForbidden = errors.New("object path is outside the caller's identity scope")
)

// Client-side errors.
var (
	// ErrNoteLimitReached rejects a create when the visible list is full.
	ErrNoteLimitReached = errors.New("note limit reached")

	// ErrInvalidNote rejects a create whose name or description is blank.
	ErrInvalidNote = errors.New("note name and description are required")

	// ErrImageUploadFailed is returned when the note record was created but
	// its image could not be stored.
	ErrImageUploadFailed = errors.New("image upload failed")

	// ErrImageResolutionFailed is returned by a strict fetch when any image
	// URL could not be resolved.
	ErrImageResolutionFailed = errors.New("image resolution failed")

	// ErrRefreshAfterCreate is returned when a note was stored but the list
	// refetch that follows failed. The create must not be retried.
	ErrRefreshAfterCreate = errors.New("note created but the list could not be refreshed")

	// ErrImageTooLarge is returned when the server refuses the image size.
	ErrImageTooLarge = errors.New("image is too large")

	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrUnauthorized      = errors.New("session expired, please sign in again")
	ErrLoginTaken        = errors.New("login is already taken")
	ErrBadCredentials    = errors.New("wrong login or password")
	ErrNoteNotFound      = errors.New("note not found")
	ErrServerError       = errors.New("server error")
	ErrServerUnreachable = errors.New("server is unreachable")
)
