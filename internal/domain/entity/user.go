// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a persisted account, either locally authenticated (email and
// password) or delegated to Google. Exactly one of PasswordHash and GoogleID
// is set, matching the Provider discriminator.
type User struct {
	ID              uuid.UUID    // The unique identifier for the account.
	Email           string       // The account's email address, unique and stored lowercase.
	FirstName       string       // The user's given name.
	LastName        string       // The user's family name.
	AvatarURL       string       // Optional URL to the user's profile picture.
	IsEmailVerified bool         // Whether the email has been verified. Always true for Google accounts.
	Provider        AuthProvider // How this account authenticates; immutable once set.
	GoogleID        string       // Google's stable subject identifier, set only when Provider is google.
	PasswordHash    string       // The bcrypt hash of the password, set only when Provider is local. Never the plaintext.
	CreatedAt       time.Time    // Timestamp of when this account was created.
	UpdatedAt       time.Time    // Timestamp of the last modification to this account.
}

// HasPassword reports whether the account carries a stored credential to
// check a password against. Google accounts have none.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
