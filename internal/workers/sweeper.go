// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/store"
)

// DefaultSweepInterval is used when NewRefreshSessionSweeper gets a
// non-positive interval.
const DefaultSweepInterval = time.Minute

// RefreshSessionSweeper periodically drops refresh sessions whose token
// has expired. Refresh tokens that are never presented again would
// otherwise stay in the store forever.
type RefreshSessionSweeper struct {
	sessions store.RefreshSessionRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewRefreshSessionSweeper(sessions store.RefreshSessionRepository, interval time.Duration, logger *logger.Logger) *RefreshSessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &RefreshSessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *RefreshSessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("refresh session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("refresh session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RefreshSessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpiredRefreshSessions(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "RefreshSessionSweeper.sweep").Msg("error deleting expired refresh sessions")
		return
	}
	if deleted > 0 {
		s.logger.Debug().Int("deleted", deleted).Msg("expired refresh sessions deleted")
	}
}
