package models

// Credentials is the transient (identifier, secret) pair parsed from the
// Authorization header of a single request. It is never persisted and the
// Password value must never be logged.
type Credentials struct {
	// EmailAddress is the submitted identifier.
	EmailAddress string

	// Password is the submitted plaintext secret.
	Password string
}
