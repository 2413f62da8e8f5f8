package service

import "errors"

var (
	// ErrMissingCredentials is returned by Authenticate when the submitted
	// identifier or secret is empty.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrWrongPassword is returned by Authenticate when the submitted secret
	// does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotCourseOwner is returned by course mutations when the
	// authenticated principal does not own the targeted course.
	ErrNotCourseOwner = errors.New("course belongs to a different user")

	// ErrHashingPassword is returned by Register when the password hash
	// cannot be computed.
	ErrHashingPassword = errors.New("failed to hash password")
)
