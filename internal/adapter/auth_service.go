package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

const (
	signInPath  = "/api/auth/login"
	refreshPath = "/api/auth/refresh"
	signOutPath = "/api/auth/logout"
	mePath      = "/api/auth/me"
	itemsPath   = "/api/items"
)

// AuthService calls the credential endpoints of the backend. It owns a bare
// resty client with no authenticator or interceptor, so a 401 from the
// refresh endpoint is final.
//
// AuthService implements session.Refresher.
type AuthService struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService]. Network failures of a call are
// retried up to retryCount times; HTTP error statuses are not.
func NewAuthService(cfg config.ClientAdapter, retryCount int, log *logger.Logger) (*AuthService, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(retryCount)

	return &AuthService{client: client, logger: log}, nil
}

// SignIn exchanges credentials for a token pair and the signed-in user.
func (a *AuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResult, error) {
	var result models.SignInResult
	if err := a.post(ctx, signInPath, credentials, &result); err != nil {
		return models.SignInResult{}, err
	}

	return result, nil
}

// Refresh exchanges refreshToken for a new pair. The returned refresh token
// is empty when the backend does not rotate it.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := a.post(ctx, refreshPath, models.RefreshRequest{RefreshToken: refreshToken}, &pair); err != nil {
		a.logger.Err(err).Str("func", "AuthService.Refresh").Msg("refresh request failed")
		return models.TokenPair{}, err
	}

	return pair, nil
}

func (a *AuthService) post(ctx context.Context, path string, body, result any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return &TransportError{Method: http.MethodPost, Path: path, Err: err}
	}

	return mapHTTPError(resp)
}
