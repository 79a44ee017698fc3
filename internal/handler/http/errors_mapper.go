package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order: the first matching target wins, so
// more specific errors come before the ones that wrap them.
var errorResponses = []errorResponse{
	{crypto.ErrSignatureExpired, http.StatusForbidden, app.MsgInvalidSignature},
	{crypto.ErrSignatureInvalid, http.StatusForbidden, app.MsgInvalidSignature},
	{service.ErrForbidden, http.StatusForbidden, app.MsgAccessDenied},

	{service.ErrNoUserID, http.StatusUnauthorized, app.MsgNoUserIDProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrUserNotFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{store.ErrObjectNotFound, http.StatusNotFound, app.MsgObjectNotFound},
	{store.ErrObjectTooLarge, http.StatusRequestEntityTooLarge, app.MsgObjectTooLarge},

	{validators.ErrValidation, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{models.ErrInvalidObjectPath, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

// responseFromError returns the status code and the body message for err.
// Validation failures expose their rule violations; anything unknown is an
// internal error.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message == "" {
			return resp.status, validationMessage(err)
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// validationMessage drops the wrapping context in front of the rule
// violations, e.g. "validation failed: name is required".
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, validators.ErrValidation.Error()); idx > 0 {
		return msg[idx:]
	}
	return msg
}
