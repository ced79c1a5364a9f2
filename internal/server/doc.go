// Package server runs the development backend: the HTTP server and its
// background workers, with signal handling and graceful shutdown.
package server
