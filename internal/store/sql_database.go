package store

import (
	"database/sql"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/migrations"
)

// DB wraps a database connection shared by the SQL repositories: SQLite
// on the client, PostgreSQL on the development backend.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded client token store schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
