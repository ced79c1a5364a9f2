package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the access/refresh credential pair held by the client session.
//
// The pair is replaced as a whole on sign-in and on every successful refresh;
// callers receive copies and never mutate the session's value in place.
type TokenPair struct {
	// AccessToken is sent as the bearer token on every authenticated request.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new pair once the access token is
	// rejected by the backend.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// IsZero reports whether neither token is set.
func (p TokenPair) IsZero() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Claims is the JWT claim set issued by the backend for access tokens.
//
// Subject carries the user id; Role is copied into the token so that the
// client can expose a currentUser without an extra round trip.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the role of the user the token was issued for.
	Role Role `json:"role,omitempty"`
}

// Token is a signed access token together with the values extracted from it.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is the role claim of the token owner.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// RefreshSession is the backend record of an issued refresh token. Only the
// keyed hash of the token is kept.
type RefreshSession struct {
	TokenHash string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the record is no longer valid at now.
func (s RefreshSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
