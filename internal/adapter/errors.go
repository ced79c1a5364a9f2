package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels carried by [HTTPError]. Match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the trimmed response body.
	Body string
	// Err is the status sentinel, nil for statuses without one.
	Err error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
	}
	if e.Body == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// TransportError is returned when no response was received: connection
// failures, timeouts and cancelled contexts.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
