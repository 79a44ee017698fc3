// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// ── register / login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, m := newMockedHandler(t, "")
	in := models.User{Login: "alice", Password: "secret"}
	registered := models.User{UserID: 7, IdentityID: "id-7", Login: "alice"}

	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Cond(func(u models.User) bool {
		return u.Login == "alice" && u.Password == "secret"
	})).Return(registered, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), registered).Return(models.Token{SignedString: "jwt-7"}, nil)

	rr := postJSON(h.register, "/api/auth/register", userBody(t, in))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer jwt-7", rr.Header().Get("Authorization"))

	var session models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, "alice", session.Login)
	assert.Equal(t, "id-7", session.IdentityID)
	assert.NotContains(t, rr.Body.String(), "jwt-7", "token travels only in the header")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		tokenErr   error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid JSON", body: "{bad", wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "unknown field", body: `{"login":"a","password":"b","admin":true}`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{
			name:       "invalid data",
			serviceErr: fmt.Errorf("register: %w", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "login taken",
			serviceErr: fmt.Errorf("create user: %w", store.ErrLoginAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgLoginAlreadyExists,
		},
		{
			name:       "unexpected error",
			serviceErr: errors.New("db is gone"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgRegistrationFailed,
		},
		{
			name:       "token creation fails",
			tokenErr:   errors.New("signing failed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, "")
			body := tt.body
			if body == "" {
				body = userBody(t, models.User{Login: "alice", Password: "secret"})
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{Login: "alice"}, tt.serviceErr)
				if tt.serviceErr == nil {
					m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.tokenErr)
				}
			}

			rr := postJSON(h.register, "/api/auth/register", body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h, m := newMockedHandler(t, "")
	found := models.User{UserID: 3, IdentityID: "id-3", Login: "bob"}

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(found, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "jwt-3"}, nil)

	rr := postJSON(h.login, "/api/auth/login", userBody(t, models.User{Login: "bob", Password: "pw"}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer jwt-3", rr.Header().Get("Authorization"))
	assert.JSONEq(t, `{"login":"bob","identity_id":"id-3"}`, rr.Body.String())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "unknown user", serviceErr: fmt.Errorf("find: %w", store.ErrUserNotFound), wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidLoginPassword},
		{name: "wrong password", serviceErr: fmt.Errorf("compare: %w", service.ErrWrongPassword), wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidLoginPassword},
		{name: "invalid data", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "unexpected error", serviceErr: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, "")
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rr := postJSON(h.login, "/api/auth/login", userBody(t, models.User{Login: "bob", Password: "pw"}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rr))
		})
	}
}

// ── logout ───────────────────────────────────────────────────────────────────

func TestLogout_RevokesToken(t *testing.T) {
	h, m := newMockedHandler(t, "")
	token := models.Token{UserID: 1, IdentityID: "id-1", SignedString: "jwt-1"}

	m.auth.EXPECT().ParseToken(gomock.Any(), "jwt-1").Return(token, nil)
	m.auth.EXPECT().RevokeToken(gomock.Any(), token).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer jwt-1")
	rr := httptest.NewRecorder()
	h.auth(http.HandlerFunc(h.logout)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestLogout_NoTokenInContext(t *testing.T) {
	h, _ := newMockedHandler(t, "")

	rr := httptest.NewRecorder()
	h.logout(rr, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, decodeError(t, rr))
}

func TestLogout_RevokeFails(t *testing.T) {
	h, m := newMockedHandler(t, "")
	token := models.Token{UserID: 1, SignedString: "jwt-1"}

	m.auth.EXPECT().ParseToken(gomock.Any(), "jwt-1").Return(token, nil)
	m.auth.EXPECT().RevokeToken(gomock.Any(), token).Return(errors.New("cache full"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer jwt-1")
	rr := httptest.NewRecorder()
	h.auth(http.HandlerFunc(h.logout)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rr))
}
