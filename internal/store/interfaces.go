package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository persists the session token pair between client runs.
//
// LoadTokens returns a zero [models.TokenPair] and a nil error when nothing
// has been stored yet.
type TokenRepository interface {
	LoadTokens(ctx context.Context) (models.TokenPair, error)
	SaveTokens(ctx context.Context, tokens models.TokenPair) error
	ClearTokens(ctx context.Context) error
}

// UserRepository holds the accounts of the development backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RefreshSessionRepository holds issued refresh tokens by their keyed hash.
//
// TakeRefreshSession removes the record it returns, so a refresh token can
// be exchanged only once.
type RefreshSessionRepository interface {
	SaveRefreshSession(ctx context.Context, session models.RefreshSession) error
	TakeRefreshSession(ctx context.Context, tokenHash string) (models.RefreshSession, error)
	DeleteExpiredRefreshSessions(ctx context.Context, now time.Time) (int, error)
}

// ItemRepository holds the resources served by GET /api/items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	ListItems(ctx context.Context, query models.ItemQuery) (models.Page[models.Item], error)
}
