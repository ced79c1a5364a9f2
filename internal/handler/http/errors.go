// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the request handlers themselves, before any service
// call. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInsufficientRole is returned when the authenticated user lacks the
	// role a route requires.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrInvalidQueryParam is returned when a list query parameter cannot be
	// parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
