// Package http is the REST transport of the development backend.
//
// It wires the chi router, the auth and items handlers, and the middleware
// chain: panic recovery, request tracing, access logging, gzip and bearer
// token authentication. Handlers translate service errors into HTTP statuses
// through statusFromError.
package http
