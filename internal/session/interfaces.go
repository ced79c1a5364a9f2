package session

import (
	"context"

	"github.com/MKhiriev/go-rest-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Refresher exchanges a refresh token for a new token pair. The returned
// pair may leave RefreshToken empty when the backend does not rotate it.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
}
