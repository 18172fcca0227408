package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or a listener fails. It returns
	// after every transport has stopped.
	Run(ctx context.Context) error

	// Shutdown stops all transports, waiting for in-flight requests until
	// ctx expires.
	Shutdown(ctx context.Context)
}
