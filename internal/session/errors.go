package session

import "errors"

var (
	// ErrNoRefreshToken is returned by [Session.Refresh] when the session
	// holds no refresh token to exchange.
	ErrNoRefreshToken = errors.New("no refresh token in session")

	// ErrRefreshFailed wraps every failure of the refresh call itself,
	// timeouts included.
	ErrRefreshFailed = errors.New("token refresh failed")
)
