package models

import "time"

// User represents an account entity used for authentication and course
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// EmailAddress is the unique identifier used during authentication.
	// Matching is exact and case-sensitive.
	EmailAddress string `json:"emailAddress"`

	// Password carries the plaintext password on inbound signup payloads
	// only. It is never persisted and never included in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in place of the password.
	// It MUST be a derived value, never plaintext, and is never exposed
	// via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt and UpdatedAt are persistence timestamps. They are excluded
	// from API responses.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user safe for embedding in API responses:
// the plaintext password (if any) and the stored hash are cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
