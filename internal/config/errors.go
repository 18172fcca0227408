package config

import (
	"errors"
	"fmt"
)

// ErrConfigMissing is the root of every "required setting is absent" error.
// Match it with [errors.Is].
var ErrConfigMissing = errors.New("required configuration is missing")

var (
	// ErrMissingPasswordHashKey is returned when APP_PASSWORD_HASH_KEY is empty.
	ErrMissingPasswordHashKey = fmt.Errorf("%w: password hash key", ErrConfigMissing)
	// ErrMissingTokenSignKey is returned when APP_TOKEN_SIGN_KEY is empty.
	ErrMissingTokenSignKey = fmt.Errorf("%w: token sign key", ErrConfigMissing)
	// ErrMissingDSN is returned when STORAGE_DB_DATABASE_URI is empty.
	ErrMissingDSN = fmt.Errorf("%w: database DSN", ErrConfigMissing)
	// ErrMissingServerAddress is returned when neither an HTTP nor a gRPC
	// listen address is configured.
	ErrMissingServerAddress = fmt.Errorf("%w: server address", ErrConfigMissing)
)

var (
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidNetAddress is returned for flag values not shaped like host:port.
	ErrInvalidNetAddress = errors.New("invalid net address")
	// ErrInvalidPort is returned when the port is not in 1..65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidHost is returned when the host is neither localhost nor an IP.
	ErrInvalidHost = errors.New("invalid host")
)
