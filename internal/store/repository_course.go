package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/models"
)

// courseRepository is the SQL-backed implementation of [CourseRepository].
// Read queries join the owning user so callers receive courses with the
// owner embedded; the owner's password hash is never selected.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// scanCourseWithOwner scans one joined course row, including the embedded
// owner columns, in [courseColumns] order.
func scanCourseWithOwner(row interface{ Scan(...any) error }) (models.Course, error) {
	var course models.Course
	var owner models.User

	err := row.Scan(
		&course.CourseID,
		&course.UserID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.CreatedAt,
		&course.UpdatedAt,
		&owner.UserID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.User = &owner
	return course, nil
}

// GetAllCourses returns every course ordered by id, each with its owner
// embedded.
func (r *courseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCoursesQuery()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourseWithOwner(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// GetCourseByID retrieves a single course with its owner embedded.
//
// Error handling:
//   - No matching row → [ErrCourseNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *courseRepository) GetCourseByID(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCourseByIDQuery(courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetCourseByID").Msg("error: building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanCourseWithOwner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.GetCourseByID").Msg("error: scanning error")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// CreateCourse persists a new course record and returns the fully populated
// [models.Course] with server-assigned fields (CourseID, CreatedAt,
// UpdatedAt). The embedded owner is NOT populated; callers needing it should
// re-read via [GetCourseByID].
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound]
//     (the owner reference does not resolve to an existing user).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCourseQuery(course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: row is nil")

		if isForeignKeyViolation(err) {
			return models.Course{}, ErrUserNotFound
		}
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Course
	if err := row.Scan(&saved.CourseID, &saved.UserID, &saved.Title, &saved.Description, &saved.EstimatedTime, &saved.MaterialsNeeded, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: scanning error")

		if isForeignKeyViolation(err) {
			return models.Course{}, ErrUserNotFound
		}
		return models.Course{}, err
	}

	return saved, nil
}

// UpdateCourse overwrites the mutable fields of an existing course and bumps
// its updated_at timestamp.
//
// Error handling:
//   - Zero affected rows → [ErrCourseNotFound].
//   - Any driver-level error → wrapped [ErrExecutingStatement].
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error: statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error: rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course by id.
//
// Error handling:
//   - Zero affected rows → [ErrCourseNotFound].
//   - Any driver-level error → wrapped [ErrExecutingStatement].
func (r *courseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error: statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error: rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}
