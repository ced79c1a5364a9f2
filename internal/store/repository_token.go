package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/models"
)

type tokenRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTokenRepository returns a [TokenRepository] backed by the session_tokens
// table of db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tokenRepository) LoadTokens(ctx context.Context) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTokensQuery()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tokens models.TokenPair
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&tokens.AccessToken, &tokens.RefreshToken)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TokenPair{}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.LoadTokens").
			Msg("failed to read stored tokens")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tokens, nil
}

func (r *tokenRepository) SaveTokens(ctx context.Context, tokens models.TokenPair) error {
	log := logger.FromContext(ctx)

	if tokens.IsZero() {
		return r.ClearTokens(ctx)
	}

	query, args, err := upsertTokensQuery(tokens.AccessToken, tokens.RefreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tokenRepository.SaveTokens").
			Msg("failed to upsert tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) ClearTokens(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteTokensQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tokenRepository.ClearTokens").
			Msg("failed to delete tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
