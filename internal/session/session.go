// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's access/refresh token pair and performs
// coalesced token refreshes on behalf of concurrent requests.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/models"
)

// DefaultRefreshTimeout bounds the shared refresh call when no timeout is
// configured.
const DefaultRefreshTimeout = 30 * time.Second

// Session is the single owner of the token pair. It is safe for concurrent
// use; readers get copies of the pair.
type Session struct {
	mu     sync.RWMutex
	tokens models.TokenPair

	repo      store.TokenRepository
	refresher Refresher
	group     singleflight.Group

	refreshTimeout time.Duration
	logger         *logger.Logger
}

// Option configures a [Session].
type Option func(*Session)

// WithRefreshTimeout sets the upper bound of a single refresh call.
// Non-positive values keep the default.
func WithRefreshTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// New returns an empty session persisting through repo and refreshing
// through refresher. A nil repo keeps tokens in memory only.
func New(repo store.TokenRepository, refresher Refresher, log *logger.Logger, opts ...Option) *Session {
	if repo == nil {
		repo = store.NewMemoryTokenRepository()
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Session{
		repo:           repo,
		refresher:      refresher,
		refreshTimeout: DefaultRefreshTimeout,
		logger:         log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Restore loads the pair saved by a previous run.
func (s *Session) Restore(ctx context.Context) error {
	tokens, err := s.repo.LoadTokens(ctx)
	if err != nil {
		return fmt.Errorf("error restoring session: %w", err)
	}

	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()

	return nil
}

// Tokens returns a copy of the current pair.
func (s *Session) Tokens() models.TokenPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// AccessToken returns the current access token or "" when signed out.
func (s *Session) AccessToken() string {
	return s.Tokens().AccessToken
}

// SetTokens replaces the pair and persists it. The in-memory pair is updated
// even when persisting fails.
func (s *Session) SetTokens(ctx context.Context, tokens models.TokenPair) error {
	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()

	if err := s.repo.SaveTokens(ctx, tokens); err != nil {
		return fmt.Errorf("error persisting tokens: %w", err)
	}
	return nil
}

// Clear drops the pair from memory and from the persistence port.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.tokens = models.TokenPair{}
	s.mu.Unlock()

	if err := s.repo.ClearTokens(ctx); err != nil {
		return fmt.Errorf("error clearing persisted tokens: %w", err)
	}
	return nil
}

// Refresh returns a pair whose access token differs from staleAccessToken,
// the token the backend has just rejected.
//
// Concurrent callers passing the same stale token share one refresh call.
// When the session already holds a newer access token no call is made. The
// refresh runs detached from ctx and is bounded by the refresh timeout, so a
// cancelled caller stops waiting without aborting the call for the others.
func (s *Session) Refresh(ctx context.Context, staleAccessToken string) (models.TokenPair, error) {
	ch := s.group.DoChan(staleAccessToken, func() (any, error) {
		return s.refresh(staleAccessToken)
	})

	select {
	case <-ctx.Done():
		return models.TokenPair{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return models.TokenPair{}, res.Err
		}
		return res.Val.(models.TokenPair), nil
	}
}

func (s *Session) refresh(staleAccessToken string) (models.TokenPair, error) {
	current := s.Tokens()

	if current.AccessToken != "" && current.AccessToken != staleAccessToken {
		s.logger.Debug().Str("func", "Session.refresh").Msg("session already holds a newer access token")
		return current, nil
	}

	if current.RefreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}
	if s.refresher == nil {
		return models.TokenPair{}, fmt.Errorf("%w: no refresher configured", ErrRefreshFailed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout)
	defer cancel()
	ctx = s.logger.WithContext(ctx)

	fresh, err := s.refresher.Refresh(ctx, current.RefreshToken)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.refresh").Msg("refresh call failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if fresh.AccessToken == "" {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, errors.New("empty access token in refresh response"))
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = current.RefreshToken
	}

	s.mu.Lock()
	if s.tokens != current {
		// signed in or out while the call was in flight
		latest := s.tokens
		s.mu.Unlock()
		if latest.AccessToken == "" {
			return models.TokenPair{}, ErrNoRefreshToken
		}
		return latest, nil
	}
	s.tokens = fresh
	s.mu.Unlock()

	if err := s.repo.SaveTokens(ctx, fresh); err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.refresh").Msg("refreshed tokens were not persisted")
	}
	s.logger.Debug().Str("func", "Session.refresh").Msg("access token refreshed")

	return fresh, nil
}
