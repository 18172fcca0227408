// Package client implements the command-line client of the identity
// service. Each subcommand maps onto one [adapter.ServerAdapter] call and
// prints its result to the configured writer.
package client
