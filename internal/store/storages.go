package store

import (
	"github.com/MKhiriev/go-course-tracker/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		CourseRepository: NewCourseRepository(db, logger),
	}
}
