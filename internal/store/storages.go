package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-session/internal/logger"
)

// ServerStorages groups the repositories of the development backend.
type ServerStorages struct {
	UserRepository           UserRepository
	RefreshSessionRepository RefreshSessionRepository
	ItemRepository           ItemRepository

	db *DB
}

// NewServerStorages returns empty in-memory repositories. The backend is a
// development fixture and starts from a clean state on every run.
func NewServerStorages() *ServerStorages {
	return &ServerStorages{
		UserRepository:           NewMemoryUserRepository(),
		RefreshSessionRepository: NewMemoryRefreshSessionRepository(),
		ItemRepository:           NewMemoryItemRepository(),
	}
}

// NewPostgresServerStorages connects to the PostgreSQL database at dsn,
// applies the backend migrations and returns repositories over it.
func NewPostgresServerStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ServerStorages, error) {
	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigratePostgres(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ServerStorages{
		UserRepository:           NewUserRepository(db, logger),
		RefreshSessionRepository: NewRefreshSessionRepository(db, logger),
		ItemRepository:           NewItemRepository(db, logger),
		db:                       db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ServerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
