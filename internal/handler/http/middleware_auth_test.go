// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/notes/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ── getTokenFromAuthHeader ───────────────────────────────────────────────────

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "surrounding spaces trimmed", header: "Bearer   my-jwt-token  ", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantParse  bool
		wantErrMsg string
	}{
		{name: "no header", wantErrMsg: ErrEmptyAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Token abc", wantErrMsg: ErrInvalidAuthorizationHeader.Error()},
		{name: "blank token", header: "Bearer  ", wantErrMsg: ErrEmptyToken.Error()},
		{
			name:       "expired or revoked token",
			header:     "Bearer stale",
			parseErr:   service.ErrTokenIsExpiredOrInvalid,
			wantParse:  true,
			wantErrMsg: app.MsgTokenIsExpiredOrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, "")
			if tt.wantParse {
				m.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantErrMsg, decodeError(t, rr))
		})
	}
}

func TestAuth_PrincipalInContext(t *testing.T) {
	h, m := newMockedHandler(t, "")
	token := models.Token{UserID: 42, IdentityID: "id-42", SignedString: "good"}
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(token, nil)

	var (
		gotUserID   int64
		gotIdentity string
		gotToken    models.Token
		ok          bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotIdentity, _ = utils.GetIdentityIDFromContext(r.Context())
		gotToken, ok = getTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer good", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "id-42", gotIdentity)
	require.True(t, ok)
	assert.Equal(t, "good", gotToken.SignedString)
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := getTokenFromContext(req.Context())

	assert.False(t, ok)
}
