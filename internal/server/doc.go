// Package server runs the notes HTTP server.
//
// It owns the listener lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT, draining in-flight requests within the configured shutdown timeout
// and finally releasing resources such as the database pool.
package server
