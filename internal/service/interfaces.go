package service

import (
	"context"

	"github.com/MKhiriev/go-rest-session/models"
)

// AuthService issues and rotates the credentials of the development backend.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResult, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// ItemService serves the item list.
type ItemService interface {
	CreateItem(ctx context.Context, item models.NewItem) (models.Item, error)
	ListItems(ctx context.Context, query models.ItemQuery) (models.Page[models.Item], error)
}

// AppInfoService reports build information of the running backend.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
