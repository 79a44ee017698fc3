// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-note-keeper server handlers and the client services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown to the user. The client matches server
// responses against them, so both sides must agree on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// expired, revoked or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the caller's
	// identity but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when an object path lies outside the
	// caller's identity scope.
	MsgAccessDenied = "access denied"

	// MsgInvalidSignature is returned for a download URL whose signature is
	// wrong or expired.
	MsgInvalidSignature = "invalid or expired signature"

	// MsgBodyHashMismatch is returned when the HashSHA256 header does not
	// match the request body.
	MsgBodyHashMismatch = "body hash mismatch"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgNoteNotFound is returned when the note does not exist for the
	// current user.
	MsgNoteNotFound = "note not found"

	// MsgObjectNotFound is returned when no object is stored under the path.
	MsgObjectNotFound = "object not found"

	// MsgObjectTooLarge is returned when an upload exceeds the size limit.
	MsgObjectTooLarge = "object too large"

	// MsgNoteLimitReached is the notice shown when the note cap is hit. It
	// takes the cap as its only argument.
	MsgNoteLimitReached = "You can only create up to %d notes."
)
