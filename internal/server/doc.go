// Package server runs the HTTP and gRPC listeners of the identity service
// and shuts them down gracefully on cancellation or signal.
package server
