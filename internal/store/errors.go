package store

import "errors"

// Low-level storage errors. Repository methods wrap them so that callers can
// match with [errors.Is] regardless of the backend in use.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the stored token row fails.
	ErrScanningRow = errors.New("failed to scan token row")

	// ErrAcquiringLock is returned when the token file lock cannot be taken.
	ErrAcquiringLock = errors.New("failed to acquire token file lock")

	// ErrCorruptedTokenFile is returned when the token file exists but does
	// not hold a valid token document.
	ErrCorruptedTokenFile = errors.New("token file is corrupted")

	// ErrLoginAlreadyExists is returned when creating a user whose login is
	// taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRefreshSessionNotFound is returned when a refresh token hash is
	// unknown or was already exchanged.
	ErrRefreshSessionNotFound = errors.New("refresh session not found")
)
