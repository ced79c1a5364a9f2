package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

// ErrNotSignedIn is returned when the session holds no access token.
var ErrNotSignedIn = errors.New("not signed in")

// API is the typed view of the backend used by the CLI.
type API struct {
	client  *Client
	auth    *AuthService
	session SessionStore
	logger  *logger.Logger
}

// NewAPI ties the authenticated client, the auth service and the session
// together.
func NewAPI(client *Client, auth *AuthService, session SessionStore, log *logger.Logger) *API {
	return &API{
		client:  client,
		auth:    auth,
		session: session,
		logger:  log,
	}
}

// SignIn authenticates against the backend and stores the issued pair in the
// session. A failure to persist the pair is logged; the session in memory is
// already signed in.
func (a *API) SignIn(ctx context.Context, credentials models.Credentials) (models.User, error) {
	result, err := a.auth.SignIn(ctx, credentials)
	if err != nil {
		return models.User{}, fmt.Errorf("sign in failed: %w", err)
	}

	if err = a.session.SetTokens(ctx, result.TokenPair); err != nil {
		a.logger.Warn().Err(err).Str("func", "API.SignIn").Msg("signed-in tokens were not persisted")
	}

	return result.User, nil
}

// SignOut revokes the refresh token on the backend and clears the session.
// The session is cleared even when the backend call fails; that error is
// returned.
func (a *API) SignOut(ctx context.Context) error {
	tokens := a.session.Tokens()

	var callErr error
	if tokens.AccessToken != "" {
		_, callErr = a.client.Do(ctx, Request{
			Method:             http.MethodPost,
			Path:               signOutPath,
			Body:               models.RefreshRequest{RefreshToken: tokens.RefreshToken},
			DisableAutoRefresh: true,
		})
	}

	if err := a.session.Clear(ctx); err != nil {
		return errors.Join(callErr, err)
	}
	if callErr != nil {
		return fmt.Errorf("sign out failed: %w", callErr)
	}
	return nil
}

// CurrentUser fetches the signed-in user from the backend.
func (a *API) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if _, err := a.client.Do(ctx, Request{Path: mePath, Result: &user}); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SessionClaims returns the user id and role carried by the stored access
// token without contacting the backend. The token signature is not checked.
func (a *API) SessionClaims() (models.Token, error) {
	token := a.session.AccessToken()
	if token == "" {
		return models.Token{}, ErrNotSignedIn
	}

	return utils.ParseClaimsUnverified(token)
}

// ListItems fetches one page of items.
func (a *API) ListItems(ctx context.Context, q models.ListQuery) (models.Page[models.Item], error) {
	var page models.Page[models.Item]
	if _, err := a.client.Do(ctx, Request{Path: itemsPath, Params: q.Params(), Result: &page}); err != nil {
		return models.Page[models.Item]{}, err
	}

	return page, nil
}
