package store

import (
	"github.com/MKhiriev/go-course-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, first_name, last_name, email_address, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
    FROM users
    WHERE email_address = $1;`

	getAllUsers = `SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
    FROM users
    ORDER BY id;`

	countUsersByEmail = `SELECT COUNT(*) FROM users WHERE email_address = $1;`
)

// queryBuilder produces course queries with PostgreSQL-style positional
// placeholders. SQLite accepts the same $N form, so both backends share the
// generated SQL.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// courseColumns lists the course and embedded-owner columns selected by every
// course read query, in scan order.
var courseColumns = []string{
	"c.id",
	"c.user_id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.created_at",
	"c.updated_at",
	"u.id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

func buildSelectAllCoursesQuery() (string, []any, error) {
	return queryBuilder.
		Select(courseColumns...).
		From("courses c").
		Join("users u ON u.id = c.user_id").
		OrderBy("c.id").
		ToSql()
}

func buildSelectCourseByIDQuery(courseID int64) (string, []any, error) {
	return queryBuilder.
		Select(courseColumns...).
		From("courses c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.id": courseID}).
		ToSql()
}

func buildInsertCourseQuery(course models.Course) (string, []any, error) {
	return queryBuilder.
		Insert("courses").
		Columns("user_id", "title", "description", "estimated_time", "materials_needed").
		Values(course.UserID, course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded).
		Suffix("RETURNING id, user_id, title, description, estimated_time, materials_needed, created_at, updated_at").
		ToSql()
}

func buildUpdateCourseQuery(course models.Course) (string, []any, error) {
	return queryBuilder.
		Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": course.CourseID}).
		ToSql()
}

func buildDeleteCourseQuery(courseID int64) (string, []any, error) {
	return queryBuilder.
		Delete("courses").
		Where(sq.Eq{"id": courseID}).
		ToSql()
}
