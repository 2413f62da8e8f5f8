package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

func newTestCourseRepo(t *testing.T) (*courseRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &courseRepository{
		db:     &DB{DB: db, dialect: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func joinedCourseColumns() []string {
	return []string{
		"id", "user_id", "title", "description", "estimated_time", "materials_needed",
		"created_at", "updated_at",
		"owner_id", "first_name", "last_name", "email_address",
	}
}

func TestGetAllCourses_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(joinedCourseColumns()).
		AddRow(1, 7, "Go for Gophers", "Intro", "12 hours", nil, now, now, 7, "Ana", "Lee", "ana@x.com").
		AddRow(2, 8, "SQL Basics", "Joins", nil, "laptop", now, now, 8, "Bob", "Ray", "bob@x.com")

	mock.ExpectQuery("SELECT (.+) FROM courses c JOIN users u").
		WillReturnRows(rows)

	courses, err := repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	first := courses[0]
	if first.User == nil || first.User.EmailAddress != "ana@x.com" {
		t.Errorf("expected owner ana@x.com embedded, got %+v", first.User)
	}
	if first.EstimatedTime == nil || *first.EstimatedTime != "12 hours" {
		t.Errorf("expected estimated time '12 hours', got %v", first.EstimatedTime)
	}
	if courses[1].MaterialsNeeded == nil || *courses[1].MaterialsNeeded != "laptop" {
		t.Errorf("expected materials 'laptop', got %v", courses[1].MaterialsNeeded)
	}
	if courses[1].EstimatedTime != nil {
		t.Errorf("expected nil estimated time, got %v", *courses[1].EstimatedTime)
	}
}

func TestGetCourseByID_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(joinedCourseColumns()).
		AddRow(3, 7, "Go for Gophers", "Intro", nil, nil, now, now, 7, "Ana", "Lee", "ana@x.com")

	mock.ExpectQuery("SELECT (.+) FROM courses c JOIN users u").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	course, err := repo.GetCourseByID(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.CourseID != 3 || course.UserID != 7 {
		t.Errorf("unexpected course scanned: %+v", course)
	}
}

func TestGetCourseByID_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM courses c JOIN users u").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(joinedCourseColumns()))

	_, err := repo.GetCourseByID(ctx, 404)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCreateCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	course := models.Course{
		UserID:      7,
		Title:       "Go for Gophers",
		Description: "Intro",
	}

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "title", "description", "estimated_time", "materials_needed", "created_at", "updated_at"}).
		AddRow(10, 7, course.Title, course.Description, nil, nil, now, now)

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnRows(rows)

	saved, err := repo.CreateCourse(ctx, course)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.CourseID != 10 {
		t.Errorf("expected CourseID=10, got %d", saved.CourseID)
	}
}

func TestCreateCourse_MissingOwner(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateCourse(ctx, models.Course{UserID: 999, Title: "t", Description: "d"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateCourse_MissingOwnerSQLite(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(sqliteConstraintError(sqlite3.ErrConstraintForeignKey))

	_, err := repo.CreateCourse(ctx, models.Course{UserID: 999, Title: "t", Description: "d"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateCourse(ctx, models.Course{CourseID: 3, Title: "Renamed", Description: "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCourse_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCourse(ctx, models.Course{CourseID: 404, Title: "t", Description: "d"})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourse_Success(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM courses").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCourse(ctx, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCourse_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseRepo(t)
	defer db.Close()

	ctx := context.Background()

	// deleting the same missing id twice keeps returning not-found
	for i := 0; i < 2; i++ {
		mock.ExpectExec("DELETE FROM courses").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	for i := 0; i < 2; i++ {
		err := repo.DeleteCourse(ctx, 404)
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	}
}
