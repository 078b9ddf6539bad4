package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account identity. Registered users sign up with a
// password; shadow users are provisioned automatically when a trip member
// has no account, carry no password hash and cannot log in.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the login name, unique case-insensitively.
	Username string

	// FirstName is the optional given name shown in dashboards.
	FirstName string

	// PasswordHash is the bcrypt hash of the password. Empty for shadow
	// accounts.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a registered user with a fresh ID.
func NewUser(username, firstName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		FirstName:    firstName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// IsShadow reports whether the account was auto-provisioned and cannot
// log in.
func (u *User) IsShadow() bool {
	return u.PasswordHash == ""
}

// DisplayName returns the name shown for this account in dashboards:
// the first name when present, otherwise the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
