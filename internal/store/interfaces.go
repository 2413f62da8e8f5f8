package store

import (
	"context"

	"github.com/MKhiriev/go-course-tracker/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the single user whose email address matches
	// exactly (case-sensitive). Returns ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)

	// GetAllUsers returns every user record ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// EmailExists reports whether a user with the given email address is
	// already stored.
	EmailExists(ctx context.Context, emailAddress string) (bool, error)
}

// CourseRepository is the data-access contract for courses.
type CourseRepository interface {
	// GetAllCourses returns every course ordered by id, each with its owner
	// embedded.
	GetAllCourses(ctx context.Context) ([]models.Course, error)

	// GetCourseByID retrieves a single course with its owner embedded.
	// Returns ErrCourseNotFound when no row matches.
	GetCourseByID(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse persists a new course and returns the record with
	// server-assigned fields populated.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateCourse overwrites the mutable fields of an existing course.
	// Returns ErrCourseNotFound when the target row does not exist.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes a course. Returns ErrCourseNotFound when the
	// target row does not exist.
	DeleteCourse(ctx context.Context, courseID int64) error
}
