// Package migrations embeds the database schemas and applies them with
// goose: the SQLite schema of the client token store and the PostgreSQL
// schema of the development backend.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies all pending client token store migrations to a SQLite db.
func Migrate(db *sql.DB) error {
	return migrate(db, "sqlite3", "sqlite")
}

// MigratePostgres applies all pending backend migrations to a PostgreSQL db.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "postgres", "postgres")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
