// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the authenticated REST transport of the client.
//
// [Client] sends every request through a resty client whose OnBeforeRequest
// hook attaches the session's bearer token. A 401 response triggers a single
// token refresh through the session and one replay of the request; callers
// only see the final outcome. [AuthService] talks to the auth endpoints over
// its own bare client so that a rejected refresh can never recurse, and [API]
// exposes the typed backend calls on top of both.
//
// Non-2xx responses are returned as [*HTTPError] wrapping a status sentinel
// (e.g. [ErrUnauthorized] for 401), and failures without a response as
// [*TransportError], so that callers can use [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-session/models"
)

// TokenSession is the part of the session the transport needs: the current
// access token and the coalesced refresh.
type TokenSession interface {
	AccessToken() string
	Refresh(ctx context.Context, staleAccessToken string) (models.TokenPair, error)
}

// SessionStore is the full session used by [API] for sign-in and sign-out.
type SessionStore interface {
	TokenSession
	Tokens() models.TokenPair
	SetTokens(ctx context.Context, tokens models.TokenPair) error
	Clear(ctx context.Context) error
}

// UnauthorizedHandler is invoked with the refresh failure when a 401 could
// not be recovered. Its return values are handed to the caller instead of
// the original 401.
type UnauthorizedHandler func(ctx context.Context, refreshErr error) (*resty.Response, error)
