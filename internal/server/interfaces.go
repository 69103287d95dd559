package server

import "context"

// Server defines the lifecycle contract of the API server.
//
// RunServer blocks until a stop signal arrives and the server has shut down.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the server and runs the cleanups.
	Shutdown(ctx context.Context) error
}

// Cleanup releases a resource after the listener has been drained.
type Cleanup struct {
	Name string
	Fn   func(ctx context.Context) error
}
