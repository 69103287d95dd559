// Package server runs the HTTP API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown, after which the registered cleanups release the hashing pool
// and the database.
package server
