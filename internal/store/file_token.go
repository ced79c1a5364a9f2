package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/models"
)

type fileTokenRepository struct {
	path   string
	logger *logger.Logger
}

// NewFileTokenRepository returns a [TokenRepository] keeping the token pair
// in a JSON document at path. Writes go through a temp file and a rename,
// guarded by a lock file.
func NewFileTokenRepository(path string, logger *logger.Logger) TokenRepository {
	return &fileTokenRepository{
		path:   path,
		logger: logger,
	}
}

func (f *fileTokenRepository) LoadTokens(ctx context.Context) (models.TokenPair, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.TokenPair{}, nil
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error reading token file: %w", err)
	}

	var tokens models.TokenPair
	if err := json.Unmarshal(data, &tokens); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileTokenRepository.LoadTokens").
			Str("path", f.path).
			Msg("failed to parse token file")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrCorruptedTokenFile, err)
	}

	return tokens, nil
}

func (f *fileTokenRepository) SaveTokens(ctx context.Context, tokens models.TokenPair) error {
	if tokens.IsZero() {
		return f.ClearTokens(ctx)
	}

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding tokens: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("error creating token directory: %w", err)
	}

	return f.withLock(ctx, func() error {
		tempFile := f.path + ".tmp"
		if err := os.WriteFile(tempFile, data, 0o600); err != nil {
			return fmt.Errorf("failed to write temp file: %w", err)
		}

		if err := os.Rename(tempFile, f.path); err != nil {
			if removeErr := os.Remove(tempFile); removeErr != nil {
				return fmt.Errorf("failed to rename temp file: %w; additionally failed to remove temp file: %w", err, removeErr)
			}
			return fmt.Errorf("failed to rename temp file: %w", err)
		}

		return nil
	})
}

func (f *fileTokenRepository) ClearTokens(ctx context.Context) error {
	if _, err := os.Stat(f.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return f.withLock(ctx, func() error {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove token file: %w", err)
		}
		return nil
	})
}

func (f *fileTokenRepository) withLock(ctx context.Context, fn func() error) error {
	lock, err := acquireFileLock(f.path)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := lock.release(); releaseErr != nil {
			logger.FromContext(ctx).Err(releaseErr).
				Str("func", "fileTokenRepository.withLock").
				Str("path", f.path).
				Msg("failed to release token file lock")
		}
	}()

	return fn()
}
