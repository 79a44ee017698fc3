// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "token-sign-key",
	TokenIssuer:   "go-note-keeper-test",
	TokenDuration: time.Hour,
	URLSignKey:    "url-sign-key",
	URLTTL:        15 * time.Minute,
	Version:       "test",
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, testAppConfig, logger.Nop()).(*authService)
	return svc, repo, hasher
}

// ── RegisterUser ──────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("bcrypt-hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Login)
			assert.Equal(t, "bcrypt-hash", u.PasswordHash)
			assert.Empty(t, u.Password, "plain password must not reach the repository")
			_, err := uuid.Parse(u.IdentityID)
			assert.NoError(t, err, "identity must be a UUID")
			assert.False(t, u.CreatedAt.IsZero())

			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Login: " alice ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.NotEmpty(t, user.IdentityID)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	for _, user := range []models.User{{}, {Login: "alice"}, {Password: "secret"}, {Login: "  ", Password: "secret"}} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	svc, _, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("too long"))

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.Error(t, err)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	stored := models.User{UserID: 3, IdentityID: "identity", Login: "alice", PasswordHash: "hash"}
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Compare("hash", "secret").Return(nil)

	user, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "identity", user.IdentityID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{PasswordHash: "hash"}, nil)
	hasher.EXPECT().Compare("hash", "nope").Return(crypto.ErrPasswordMismatch)

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "x"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_EmptyPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ────────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 9, IdentityID: "identity-9"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)
	assert.Equal(t, "identity-9", parsed.IdentityID)
	assert.Equal(t, token.ID, parsed.ID)
}

func TestAuthService_CreateToken_NoIdentity(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 9})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	other := NewAuthService(nil, nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{UserID: 1, IdentityID: "id"})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_RevokeToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 9, IdentityID: "identity-9"})
	require.NoError(t, err)
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, parsed))

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// a second token of the same user stays valid
	second, err := svc.CreateToken(ctx, models.User{UserID: 9, IdentityID: "identity-9"})
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, second.SignedString)
	assert.NoError(t, err)
}

func TestAuthService_RevokeToken_WithoutID(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	assert.ErrorIs(t, svc.RevokeToken(context.Background(), models.Token{}), ErrTokenIsExpiredOrInvalid)
}
