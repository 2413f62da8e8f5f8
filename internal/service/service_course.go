package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/internal/store"
	"github.com/MKhiriev/go-course-tracker/internal/validators"
	"github.com/MKhiriev/go-course-tracker/models"
)

// courseService is the concrete implementation of CourseService.
//
// Mutations follow a fixed gate order: load the target course first (so a
// missing course reports not-found, never forbidden), then the ownership
// check, then payload validation, then the commit.
type courseService struct {
	// courseRepository is the data-access layer for course records.
	courseRepository store.CourseRepository

	// validator aggregates all course payload failures before reporting.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCourseService constructs a CourseService wired to the given
// CourseRepository and validator.
func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

// ListCourses returns every course with its owner embedded.
func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	courses, err := c.courseRepository.GetAllCourses(ctx)
	if err != nil {
		log.Err(err).Msg("listing courses failed")
		return nil, fmt.Errorf("listing courses failed: %w", err)
	}

	return courses, nil
}

// GetCourse returns a single course with its owner embedded, or a wrapped
// store.ErrCourseNotFound.
func (c *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	course, err := c.courseRepository.GetCourseByID(ctx, courseID)
	if err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("course lookup failed")
		return models.Course{}, fmt.Errorf("course lookup failed: %w", err)
	}

	return course, nil
}

// CreateCourse validates the payload and persists a new course owned by the
// principal. The owner reference always comes from the authenticated
// principal, never from the payload.
func (c *courseService) CreateCourse(ctx context.Context, principal models.User, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	course.UserID = principal.UserID

	if err := c.validator.Validate(ctx, course); err != nil {
		log.Err(err).Int64("userID", principal.UserID).Msg("invalid course payload")
		return models.Course{}, err
	}

	savedCourse, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Int64("userID", principal.UserID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return savedCourse, nil
}

// UpdateCourse applies the fixed gate order: load (not-found), ownership
// (forbidden), validation (bad request), commit. The stored owner reference
// never changes on update.
func (c *courseService) UpdateCourse(ctx context.Context, principal models.User, course models.Course) error {
	log := logger.FromContext(ctx)

	existing, err := c.courseRepository.GetCourseByID(ctx, course.CourseID)
	if err != nil {
		log.Err(err).Int64("courseID", course.CourseID).Msg("course lookup failed")
		return fmt.Errorf("course lookup failed: %w", err)
	}

	if existing.UserID != principal.UserID {
		log.Error().
			Int64("courseID", existing.CourseID).
			Int64("ownerID", existing.UserID).
			Int64("principalID", principal.UserID).
			Msg("update denied: principal does not own course")
		return ErrNotCourseOwner
	}

	if err := c.validator.Validate(ctx, course); err != nil {
		log.Err(err).Int64("courseID", course.CourseID).Msg("invalid course payload")
		return err
	}

	course.UserID = existing.UserID

	if err := c.courseRepository.UpdateCourse(ctx, course); err != nil {
		log.Err(err).Int64("courseID", course.CourseID).Msg("course update ended with error")
		return fmt.Errorf("course update ended with error: %w", err)
	}

	return nil
}

// DeleteCourse applies the fixed gate order: load (not-found), ownership
// (forbidden), commit.
func (c *courseService) DeleteCourse(ctx context.Context, principal models.User, courseID int64) error {
	log := logger.FromContext(ctx)

	existing, err := c.courseRepository.GetCourseByID(ctx, courseID)
	if err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("course lookup failed")
		return fmt.Errorf("course lookup failed: %w", err)
	}

	if existing.UserID != principal.UserID {
		log.Error().
			Int64("courseID", existing.CourseID).
			Int64("ownerID", existing.UserID).
			Int64("principalID", principal.UserID).
			Msg("delete denied: principal does not own course")
		return ErrNotCourseOwner
	}

	if err := c.courseRepository.DeleteCourse(ctx, courseID); err != nil {
		log.Err(err).Int64("courseID", courseID).Msg("course deletion ended with error")
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	return nil
}
