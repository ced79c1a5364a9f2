package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-session/models"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[int64]models.User
	byLogin map[string]int64
	nextID  int64
}

// NewMemoryUserRepository returns an empty user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[int64]models.User),
		byLogin: make(map[string]int64),
		nextID:  1,
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byLogin[user.Login]; ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrLoginAlreadyExists, user.Login)
	}

	user.UserID = m.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m.nextID++

	m.byID[user.UserID] = user
	m.byLogin[user.Login] = user.UserID

	return user, nil
}

func (m *memoryUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byLogin[login]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return m.byID[id], nil
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}
