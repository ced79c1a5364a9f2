package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-session/models"
)

type memoryRefreshSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.RefreshSession
}

// NewMemoryRefreshSessionRepository returns an empty refresh session
// repository.
func NewMemoryRefreshSessionRepository() RefreshSessionRepository {
	return &memoryRefreshSessionRepository{sessions: make(map[string]models.RefreshSession)}
}

func (m *memoryRefreshSessionRepository) SaveRefreshSession(_ context.Context, session models.RefreshSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.TokenHash] = session
	return nil
}

func (m *memoryRefreshSessionRepository) TakeRefreshSession(_ context.Context, tokenHash string) (models.RefreshSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[tokenHash]
	if !ok {
		return models.RefreshSession{}, ErrRefreshSessionNotFound
	}
	delete(m.sessions, tokenHash)

	return session, nil
}

func (m *memoryRefreshSessionRepository) DeleteExpiredRefreshSessions(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for hash, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, hash)
			deleted++
		}
	}

	return deleted, nil
}
