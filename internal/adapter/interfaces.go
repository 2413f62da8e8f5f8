// Package adapter provides a typed HTTP client for the course tracker REST
// API. It is used by the seed utility and is suitable for any Go program that
// needs to talk to a running server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-tracker/models"
)

// ServerAdapter is a typed client for the course tracker HTTP API.
//
// Mutating course operations require credentials to have been supplied via
// SetCredentials; they are sent with every request using HTTP Basic
// authentication.
type ServerAdapter interface {
	// SetCredentials stores the email/password pair used for Basic
	// authentication on guarded endpoints.
	SetCredentials(emailAddress, password string)

	// RegisterUser creates a new account via POST /users.
	RegisterUser(ctx context.Context, user models.User) error

	// ListUsers fetches all accounts via GET /users. Requires credentials.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListCourses fetches all courses via GET /courses.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse fetches a single course via GET /courses/{id}.
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse creates a course owned by the authenticated user via
	// POST /courses. Requires credentials.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateCourse replaces a course's attributes via PUT /courses/{id}.
	// Requires credentials and ownership.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes a course via DELETE /courses/{id}. Requires
	// credentials and ownership.
	DeleteCourse(ctx context.Context, courseID int64) error
}
