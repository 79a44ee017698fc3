// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// NoteLimitError rejects a create when the visible list already holds Limit
// notes. It matches [ErrNoteLimitReached] and its message is the notice shown
// to the user.
type NoteLimitError struct {
	Limit int
}

func (e *NoteLimitError) Error() string {
	return fmt.Sprintf(app.MsgNoteLimitReached, e.Limit)
}

func (e *NoteLimitError) Is(target error) bool {
	return target == ErrNoteLimitReached
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return withMessage(ErrInvalidDataProvided, msg, app.MsgInvalidDataProvided)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrBadCredentials
		}
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgObjectNotFound {
			return withMessage(ErrServerError, msg, "")
		}
		return ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return ErrLoginTaken
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrImageTooLarge

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return withMessage(ErrServerError, msg, app.MsgInternalServerError)
	}

	return err
}

// withMessage keeps the server's wording unless it only repeats the generic
// text of the sentinel.
func withMessage(sentinel error, msg, generic string) error {
	if msg == "" || msg == generic {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return ""
}
