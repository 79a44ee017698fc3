// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

const msgServerUnavailable = "No network or the server is unavailable"

// humanizeError turns a service error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var limitErr *service.NoteLimitError
	switch {
	case errors.As(err, &limitErr):
		return limitErr.Error()
	case errors.Is(err, service.ErrServerUnreachable):
		return msgServerUnavailable
	case errors.Is(err, service.ErrImageResolutionFailed):
		return "Some images could not be loaded, press r to retry"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
