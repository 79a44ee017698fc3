// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery(dollar, 42)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, user_id, name, description, image, created_at FROM notes WHERE user_id = $1 ORDER BY created_at, id", query)
	assert.Equal(t, []any{int64(42)}, args)

	query, _, err = buildListNotesQuery(question, 42)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE user_id = ?")
}

func TestBuildCreateNoteQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildCreateNoteQuery(question, models.Note{
		ID: "id", OwnerID: 1, Name: "n", Description: "d", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO notes (id,user_id,name,description,image,created_at) VALUES (?,?,?,?,?,?)", query)
	require.Len(t, args, 6)
	assert.Equal(t, nullString(""), args[4])
}

func TestBuildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(dollar, 5, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = $1 AND user_id = $2 RETURNING id, user_id, name, description, image, created_at", query)
	assert.Equal(t, []any{"note-1", int64(5)}, args)
}

func TestBuildUserQueries(t *testing.T) {
	query, args, err := buildCreateUserQuery(dollar, models.User{IdentityID: "i", Login: "l", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (identity_id,login,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING user_id", query)
	assert.Len(t, args, 4)

	query, args, err = buildFindUserByLoginQuery(question, "john")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, identity_id, login, password_hash, created_at FROM users WHERE login = ?", query)
	assert.Equal(t, []any{"john"}, args)
}

func TestDBTime_Scan(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time", src: now, want: now},
		{name: "sqlite text", src: "2026-03-01 12:30:00+00:00", want: now},
		{name: "bytes", src: []byte("2026-03-01 12:30:00"), want: now},
		{name: "nil", src: nil, want: time.Time{}},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "int", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got dbTime
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(time.Time(got)), "got %v", time.Time(got))
		})
	}
}
