// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is everything the three binaries can be configured
// with. Fields are filled from defaults, then APP_/STORAGE_/SERVER_/ADAPTER_
// environment variables, then flags, then the JSON file named by CONFIG or -c.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	JSONFilePath string `env:"CONFIG"`

	// Args are the positional arguments left after flags; the client and
	// admin tools take their subcommand from here.
	Args []string
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App carries the secrets and tuning knobs of the identity core.
type App struct {
	// PasswordHashKey is mixed into every stored password hash. Rotating it
	// invalidates all existing passwords.
	PasswordHashKey string        `env:"PASSWORD_HASH_KEY"`
	TokenSignKey    string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer     string        `env:"TOKEN_ISSUER"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION"`

	Argon Argon `envPrefix:"ARGON_"`

	Version  string `env:"VERSION"`
	LogLevel string `env:"LOG_LEVEL"`
}

// Argon is the Argon2id cost: passes, memory in KiB and parallelism.
type Argon struct {
	Time    uint32 `env:"TIME" json:"time"`
	Memory  uint32 `env:"MEMORY" json:"memory"`
	Threads uint8  `env:"THREADS" json:"threads"`
}

// Server configures the inbound listeners. Either address may be empty,
// but not both.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	GRPCAddress    string        `env:"GRPC_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB selects the backend by DSN scheme: postgres:// (or postgresql://) for
// PostgreSQL, sqlite:// or file: for SQLite.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Adapter configures the client binary's connection to the server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges configuration from all sources in
// the following priority order (later sources override earlier non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// No role-specific validation is applied; see [GetServerConfig],
// [GetAdminConfig] and [GetClientConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetServerConfig loads the configuration and validates it for the identity
// server: both secrets, the DSN and at least one listen address are required.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

// GetAdminConfig loads the configuration and validates it for the admin
// tool, which talks to the store directly: both secrets and the DSN are
// required.
func GetAdminConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateAdmin()
}

// defaultConfig returns the values used when no source provides a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-identity",
			TokenDuration: 24 * time.Hour,
			Argon: Argon{
				Time:    3,
				Memory:  64 * 1024,
				Threads: 2,
			},
			Version:  "dev",
			LogLevel: "debug",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}
