package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/models"
)

type refreshSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRefreshSessionRepository returns a [RefreshSessionRepository] backed by
// the refresh_sessions table.
func NewRefreshSessionRepository(db *DB, logger *logger.Logger) RefreshSessionRepository {
	return &refreshSessionRepository{db: db, logger: logger}
}

func (r *refreshSessionRepository) SaveRefreshSession(ctx context.Context, session models.RefreshSession) error {
	query, args, err := insertRefreshSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: id %d", ErrNoUserWasFound, session.UserID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "refreshSessionRepository.SaveRefreshSession").Msg("failed to insert refresh session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *refreshSessionRepository) TakeRefreshSession(ctx context.Context, tokenHash string) (models.RefreshSession, error) {
	query, args, err := takeRefreshSessionQuery(tokenHash)
	if err != nil {
		return models.RefreshSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session := models.RefreshSession{TokenHash: tokenHash}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RefreshSession{}, ErrRefreshSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "refreshSessionRepository.TakeRefreshSession").Msg("failed to take refresh session")
		return models.RefreshSession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return session, nil
}

func (r *refreshSessionRepository) DeleteExpiredRefreshSessions(ctx context.Context, now time.Time) (int, error) {
	query, args, err := deleteExpiredRefreshSessionsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "refreshSessionRepository.DeleteExpiredRefreshSessions").Msg("failed to delete expired refresh sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(deleted), nil
}
