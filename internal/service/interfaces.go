package service

import (
	"context"

	"github.com/MKhiriev/go-course-tracker/models"
)

// AuthService resolves a request's caller identity from submitted
// credentials.
type AuthService interface {
	// Authenticate looks up the user matching the submitted email address
	// (exact, case-sensitive) and verifies the submitted password against
	// the stored hash. Returns the full user record on success.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// UserService handles account signup and listing.
type UserService interface {
	// Register validates a signup payload, hashes the submitted password,
	// and persists the new account.
	Register(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns every stored user record.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CourseService implements the validated CRUD contract for courses,
// including the ownership checks on mutation.
type CourseService interface {
	// ListCourses returns every course with its owner embedded.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns a single course with its owner embedded.
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse validates the payload and persists a new course owned by
	// the authenticated principal.
	CreateCourse(ctx context.Context, principal models.User, course models.Course) (models.Course, error)

	// UpdateCourse loads the target course, confirms the principal owns it,
	// validates the payload, and commits the update — in that order.
	UpdateCourse(ctx context.Context, principal models.User, course models.Course) error

	// DeleteCourse loads the target course, confirms the principal owns it,
	// and removes it.
	DeleteCourse(ctx context.Context, principal models.User, courseID int64) error
}
