// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, slugs and price formatting.
package utils

import (
	"context"

	"github.com/MKhiriev/go-rest-session/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the user identifier in the context.
	UserIDCtxKey = contextKey("userID")
	// UserRoleCtxKey is the key used to store the user role in the context.
	UserRoleCtxKey = contextKey("userRole")
)

// WithUser returns a copy of ctx carrying the authenticated user's id and
// role, as extracted from a validated access token.
func WithUser(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, token.UserID)
	return context.WithValue(ctx, UserRoleCtxKey, token.Role)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true:  value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserRoleFromContext retrieves the user role stored by [WithUser].
func GetUserRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(models.Role)
	return role, ok
}
