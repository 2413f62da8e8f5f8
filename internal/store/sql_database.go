package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-course-tracker/internal/config"
	"github.com/MKhiriev/go-course-tracker/internal/logger"
	"github.com/MKhiriev/go-course-tracker/migrations"
)

type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewDatabase opens a database connection for the configured DSN. A
// "postgres://" or "postgresql://" scheme selects the pgx driver; any other
// value is treated as an SQLite file path for local use.
func NewDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isUniqueViolation reports whether err is a unique-constraint violation from
// either supported backend.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation ||
		sqliteError(err) == sqlite3.ErrConstraintUnique
}

// isForeignKeyViolation reports whether err is a foreign-key violation from
// either supported backend.
func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation ||
		sqliteError(err) == sqlite3.ErrConstraintForeignKey
}
