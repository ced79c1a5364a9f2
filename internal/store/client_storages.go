// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
)

const jsonFileSuffix = ".json"

// ClientStorages groups the client-side storage used by the session layer.
type ClientStorages struct {
	// TokenRepository persists the session token pair between runs.
	TokenRepository TokenRepository

	db *DB
}

// NewClientStorages picks the token persistence backend from cfg.DSN:
//   - empty DSN keeps tokens in memory for the lifetime of the process;
//   - a path ending in ".json" stores them in a locked JSON file;
//   - anything else is opened as a SQLite database and migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case dsn == "":
		logger.Debug().Str("func", "NewClientStorages").Msg("using in-memory token storage")
		return &ClientStorages{TokenRepository: NewMemoryTokenRepository()}, nil

	case strings.HasSuffix(strings.ToLower(dsn), jsonFileSuffix):
		logger.Debug().Str("func", "NewClientStorages").Str("path", dsn).Msg("using file token storage")
		return &ClientStorages{TokenRepository: NewFileTokenRepository(dsn, logger)}, nil
	}

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenRepository: NewTokenRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
