package domain

import (
	"regexp"
	"time"
)

// UsernamePattern is the allowed username format: alphanumerics and underscore.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// User represents a registered account.
type User struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string `json:"id"`

	// Username is the unique login name.
	// Constraints: 3+ characters, alphanumerics and underscore only.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed in API responses; the plaintext is never persisted.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with a fresh creation timestamp.
// The ID is assigned by the caller before persisting.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
