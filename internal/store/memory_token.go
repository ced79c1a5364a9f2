package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-rest-session/models"
)

// MemoryTokenRepository keeps the token pair for the lifetime of the process.
type MemoryTokenRepository struct {
	mu     sync.Mutex
	tokens models.TokenPair
}

// NewMemoryTokenRepository returns an empty in-memory repository.
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{}
}

func (m *MemoryTokenRepository) LoadTokens(context.Context) (models.TokenPair, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens, nil
}

func (m *MemoryTokenRepository) SaveTokens(_ context.Context, tokens models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = tokens
	return nil
}

func (m *MemoryTokenRepository) ClearTokens(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = models.TokenPair{}
	return nil
}
