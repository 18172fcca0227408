// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the identity REST API.
//
// [ServerAdapter] hides the transport from the command-line client. Non-2xx
// responses are mapped to the sentinel errors in errors.go so callers can
// branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the identity server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Info fetches the API root (message and server version).
	Info(ctx context.Context) (models.AppInfo, error)

	// Register creates an account and returns the stored record.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.IssuedToken, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ListUsers returns up to limit accounts; 0 means no limit.
	ListUsers(ctx context.Context, limit uint64) ([]models.User, error)
}
