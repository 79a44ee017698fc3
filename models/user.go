package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// IdentityID is the public identity scope of the account (UUID).
	// Every object the user uploads lives under media/{IdentityID}/.
	IdentityID string `json:"identity_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the plain password on the way in and is never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the authenticated state the client holds after login.
type Session struct {
	Login      string `json:"login"`
	IdentityID string `json:"identity_id"`
	Token      string `json:"-"`
}

// IsEmpty reports whether no one is signed in.
func (s Session) IsEmpty() bool {
	return s.IdentityID == "" || s.Token == ""
}
